package app

import (
	"context"

	"github.com/qkart/storefront/internal/cart/domain"
)

// CartAPI is the slice of the backend the Reconciler mutates through.
// Reading the sparse cart happens at load time, outside the Reconciler.
type CartAPI interface {
	// Upsert sets the absolute quantity for a product and returns the full
	// new sparse cart. Quantity zero or below removes the entry.
	Upsert(ctx context.Context, token, productID string, quantity int) ([]domain.Entry, error)
}
