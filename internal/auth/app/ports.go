package app

import (
	"context"

	"github.com/qkart/storefront/internal/session"
)

type AuthAPI interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (session.Session, error)
}

type SessionStore interface {
	Save(session.Session) error
	Clear() error
}
