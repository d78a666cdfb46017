package rest

import (
	"context"

	"github.com/qkart/storefront/internal/session"
	"github.com/qkart/storefront/pkg/httpx"
)

type AuthAPI struct {
	client *httpx.Client
}

func NewAuthAPI(client *httpx.Client) *AuthAPI {
	return &AuthAPI{client: client}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *AuthAPI) Register(ctx context.Context, username, password string) error {
	body := credentials{Username: username, Password: password}
	return a.client.Post(ctx, "/auth/register", "", body, nil)
}

type loginResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Balance  int64  `json:"balance"`
}

func (a *AuthAPI) Login(ctx context.Context, username, password string) (session.Session, error) {
	body := credentials{Username: username, Password: password}

	var resp loginResponse
	if err := a.client.Post(ctx, "/auth/login", "", body, &resp); err != nil {
		return session.Session{}, err
	}

	return session.Session{
		Token:    resp.Token,
		Username: resp.Username,
		Balance:  resp.Balance,
	}, nil
}
