package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client is a thin JSON client for the QKart API. It joins paths onto the
// configured base URL, attaches the bearer token when one is given, and
// decodes the backend's {success,message} envelope on failure.
type Client struct {
	base string
	http *http.Client
	log  *slog.Logger
}

func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// Get issues a GET request and decodes the JSON response into out.
// token may be empty for unauthenticated endpoints.
func (c *Client) Get(ctx context.Context, path string, query url.Values, token string, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &TransportError{Cause: err}
	}

	return c.do(req, token, out)
}

// Post encodes body as JSON, issues a POST request and decodes the response
// into out. out may be nil when the response body is not needed.
func (c *Client) Post(ctx context.Context, path, token string, body, out any) error {
	buf := new(bytes.Buffer)
	if body != nil {
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return &TransportError{Cause: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, buf)
	if err != nil {
		return &TransportError{Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, token, out)
}

func (c *Client) do(req *http.Request, token string, out any) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	reqID := uuid.NewString()
	c.log.Debug("api request",
		slog.String("request_id", reqID),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		// Context cancellation is not a transport failure; superseded
		// requests must stay silent.
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		return &TransportError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(reqID, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Cause: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) apiError(reqID string, resp *http.Response) error {
	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || json.Unmarshal(raw, &envelope) != nil || envelope.Message == "" {
		return &TransportError{
			Cause: fmt.Errorf("unexpected response %d from %s", resp.StatusCode, resp.Request.URL.Path),
		}
	}

	c.log.Debug("api error",
		slog.String("request_id", reqID),
		slog.Int("status", resp.StatusCode),
		slog.String("message", envelope.Message),
	)

	return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
}
