package app

import (
	"context"

	"github.com/qkart/storefront/internal/catalog/domain"
)

type ProductAPI interface {
	Catalog(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
}

// Display is the product-list sink. The controller never renders; whoever
// owns the screen implements this.
type Display interface {
	ShowProducts(products []domain.Product)
}

// Notifier surfaces user-visible failures (the snackbar of the web UI).
type Notifier interface {
	Error(msg string)
}
