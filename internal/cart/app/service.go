package app

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/qkart/storefront/internal/cart/domain"
	catalog "github.com/qkart/storefront/internal/catalog/domain"
)

// OrphanPolicy decides what Reconcile does when a cart entry references a
// product that is not in the loaded catalog.
type OrphanPolicy int

const (
	// OrphanAbort fails the whole reconciliation. Default.
	OrphanAbort OrphanPolicy = iota

	// OrphanDrop skips orphaned entries but still reports them.
	OrphanDrop
)

type SetQuantityOptions struct {
	// PreventDuplicate refuses the call outright when the product is
	// already in the cart, before any network traffic.
	PreventDuplicate bool
}

// Reconciler translates between the server's sparse cart and display-ready
// line items, and mediates every cart mutation.
type Reconciler struct {
	api    CartAPI
	policy OrphanPolicy
	log    *slog.Logger

	// seq orders concurrent mutations: only the response to the most
	// recently issued mutation may become the new cart state.
	seq atomic.Uint64
}

func NewReconciler(api CartAPI, policy OrphanPolicy, log *slog.Logger) *Reconciler {
	return &Reconciler{
		api:    api,
		policy: policy,
		log:    log,
	}
}

// Reconcile joins each cart entry with its product record, preserving entry
// order. With all lookups resolving, the output has exactly one line item
// per entry. Orphaned entries produce a *domain.ReconciliationError: under
// OrphanAbort no list is returned, under OrphanDrop the reduced list is
// returned alongside the error so the caller can still notify.
func (r *Reconciler) Reconcile(entries []domain.Entry, products []catalog.Product) ([]domain.LineItem, error) {
	byID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]domain.LineItem, 0, len(entries))
	var missing []string

	for _, e := range entries {
		p, ok := byID[e.ProductID]
		if !ok {
			missing = append(missing, e.ProductID)
			continue
		}
		items = append(items, domain.LineItem{
			ProductID: e.ProductID,
			Quantity:  e.Quantity,
			Name:      p.Name,
			Category:  p.Category,
			Cost:      p.Cost,
			Rating:    p.Rating,
			ImageURL:  p.ImageURL,
		})
	}

	if len(missing) > 0 {
		err := &domain.ReconciliationError{Missing: missing}
		if r.policy == OrphanAbort {
			return nil, err
		}
		return items, err
	}

	return items, nil
}

// SetQuantity sets the absolute quantity for a product (zero or below
// removes it) and returns the fresh line items reconciled from the server's
// response. The returned list replaces the caller's prior list entirely; on
// any error the prior list stays the source of truth.
//
// Concurrent mutations are last-response-wins: a response that arrives after
// a newer mutation was issued is discarded with domain.ErrStaleResponse.
func (r *Reconciler) SetQuantity(ctx context.Context, token string, current []domain.LineItem, products []catalog.Product, productID string, quantity int, opts SetQuantityOptions) ([]domain.LineItem, error) {
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}

	if opts.PreventDuplicate {
		for _, it := range current {
			if it.ProductID == productID {
				return current, domain.ErrDuplicateItem
			}
		}
	}

	seq := r.seq.Add(1)

	entries, err := r.api.Upsert(ctx, token, productID, quantity)
	if err != nil {
		return nil, err
	}

	if seq != r.seq.Load() {
		r.log.Debug("discarding superseded cart response",
			slog.String("product_id", productID),
			slog.Uint64("seq", seq),
		)
		return nil, domain.ErrStaleResponse
	}

	return r.Reconcile(entries, products)
}

// AddToCart puts one unit of a product into the cart, refusing duplicates.
func (r *Reconciler) AddToCart(ctx context.Context, token string, current []domain.LineItem, products []catalog.Product, productID string) ([]domain.LineItem, error) {
	return r.SetQuantity(ctx, token, current, products, productID, 1, SetQuantityOptions{PreventDuplicate: true})
}
