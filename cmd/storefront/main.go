package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	authapp "github.com/qkart/storefront/internal/auth/app"
	authrest "github.com/qkart/storefront/internal/auth/infra/rest"
	cartapp "github.com/qkart/storefront/internal/cart/app"
	cartrest "github.com/qkart/storefront/internal/cart/infra/rest"
	catalogrest "github.com/qkart/storefront/internal/catalog/infra/rest"
	"github.com/qkart/storefront/internal/session"
	"github.com/qkart/storefront/pkg/config"
	"github.com/qkart/storefront/pkg/httpx"
	"github.com/qkart/storefront/pkg/logger"
)

// storefront bundles the wired services every command needs.
type storefront struct {
	cfg   config.Config
	log   *slog.Logger
	store *session.FileStore
	sess  session.Session

	products *catalogrest.ProductAPI
	cartAPI  *cartrest.CartAPI
	cart     *cartapp.Reconciler
	auth     *authapp.Service
}

func newStorefront() (*storefront, error) {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	path := cfg.SessionFile
	if path == "" {
		var err error
		path, err = session.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve session path: %w", err)
		}
	}
	store := session.NewFileStore(path)

	sess, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	client := httpx.New(cfg.Endpoint, cfg.HTTPTimeout, log)
	cartAPI := cartrest.NewCartAPI(client)

	return &storefront{
		cfg:      cfg,
		log:      log,
		store:    store,
		sess:     sess,
		products: catalogrest.NewProductAPI(client),
		cartAPI:  cartAPI,
		cart:     cartapp.NewReconciler(cartAPI, cartapp.OrphanAbort, log),
		auth:     authapp.NewService(authrest.NewAuthAPI(client), store, log),
	}, nil
}

func main() {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "QKart terminal storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProductsCmd(),
		newSearchCmd(),
		newRegisterCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newCartCmd(),
		newCheckoutCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
