package app

import (
	"context"
	"log/slog"

	"github.com/qkart/storefront/internal/session"
)

type Service struct {
	api   AuthAPI
	store SessionStore
	log   *slog.Logger
}

func NewService(api AuthAPI, store SessionStore, log *slog.Logger) *Service {
	return &Service{
		api:   api,
		store: store,
		log:   log,
	}
}

// Register validates the form and creates the account. The user logs in
// separately afterwards.
func (s *Service) Register(ctx context.Context, username, password, confirm string) error {
	if err := ValidateRegistration(username, password, confirm); err != nil {
		return err
	}
	return s.api.Register(ctx, username, password)
}

// Login validates the form, authenticates, and persists the session so
// later runs pick it up.
func (s *Service) Login(ctx context.Context, username, password string) (session.Session, error) {
	if err := ValidateLogin(username, password); err != nil {
		return session.Session{}, err
	}

	sess, err := s.api.Login(ctx, username, password)
	if err != nil {
		return session.Session{}, err
	}

	if err := s.store.Save(sess); err != nil {
		return session.Session{}, err
	}

	s.log.Info("logged in", slog.String("username", sess.Username))
	return sess, nil
}

// Logout tears the persisted session down.
func (s *Service) Logout() error {
	return s.store.Clear()
}
