package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/qkart/storefront/internal/cart/domain"
	"github.com/qkart/storefront/pkg/httpx"
)

// CartAPI talks to the backend's authenticated /cart endpoints and maps its
// status codes onto the cart error taxonomy.
type CartAPI struct {
	client *httpx.Client
}

func NewCartAPI(client *httpx.Client) *CartAPI {
	return &CartAPI{client: client}
}

func (a *CartAPI) Fetch(ctx context.Context, token string) ([]domain.Entry, error) {
	var entries []domain.Entry
	if err := a.client.Get(ctx, "/cart", nil, token, &entries); err != nil {
		return nil, mapError(err)
	}
	return entries, nil
}

type upsertRequest struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

func (a *CartAPI) Upsert(ctx context.Context, token, productID string, quantity int) ([]domain.Entry, error) {
	var entries []domain.Entry
	body := upsertRequest{ProductID: productID, Qty: quantity}
	if err := a.client.Post(ctx, "/cart", token, body, &entries); err != nil {
		return nil, mapError(err)
	}
	return entries, nil
}

func mapError(err error) error {
	var apiErr *httpx.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, apiErr.Message)
	case http.StatusBadRequest, http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", domain.ErrNotAuthenticated, apiErr.Message)
	}
	return err
}
