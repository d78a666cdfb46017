package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotAuthenticated gates every cart mutation: no token, no call.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrDuplicateItem is a non-fatal refusal to add a product that is
	// already in the cart. The cart is left untouched.
	ErrDuplicateItem = errors.New("item already in cart")

	// ErrProductNotFound means the server rejected the product id.
	ErrProductNotFound = errors.New("product doesn't exist")

	// ErrStaleResponse marks a mutation response that was superseded by a
	// newer one before it arrived. Not user-visible; the caller simply
	// keeps the newer state.
	ErrStaleResponse = errors.New("stale cart response discarded")
)

// ReconciliationError reports cart entries whose product id has no match in
// the loaded catalog. Depending on policy the reconciled list is either
// aborted or returned with the orphans dropped; either way the error is
// reported rather than the entries silently vanishing.
type ReconciliationError struct {
	Missing []string
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("cart references unknown products: %s", strings.Join(e.Missing, ", "))
}
