package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	cartapp "github.com/qkart/storefront/internal/cart/app"
	cartdomain "github.com/qkart/storefront/internal/cart/domain"
	catalogdomain "github.com/qkart/storefront/internal/catalog/domain"
	"github.com/qkart/storefront/pkg/httpx"
)

// loadCart fetches catalog and cart together, the way the web app loads the
// products page, and reconciles them into line items.
func (sf *storefront) loadCart(ctx context.Context) ([]catalogdomain.Product, []cartdomain.LineItem, error) {
	if !sf.sess.Authenticated() {
		return nil, nil, cartdomain.ErrNotAuthenticated
	}

	var (
		products []catalogdomain.Product
		entries  []cartdomain.Entry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = sf.products.Catalog(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = sf.cartAPI.Fetch(gctx, sf.sess.Token)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	items, err := sf.cart.Reconcile(entries, products)
	if err != nil {
		return nil, nil, err
	}
	return products, items, nil
}

func newCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the reconciled cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := newStorefront()
			if err != nil {
				return err
			}

			_, items, err := sf.loadCart(cmd.Context())
			if err != nil {
				return cartUserError(err)
			}

			showCart(items)
			return nil
		},
	}

	cmd.AddCommand(newCartAddCmd(), newCartSetCmd())
	return cmd
}

func newCartAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <productId>",
		Short: "Add one unit of a product (refuses duplicates)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := newStorefront()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			products, items, err := sf.loadCart(ctx)
			if err != nil {
				return cartUserError(err)
			}

			updated, err := sf.cart.AddToCart(ctx, sf.sess.Token, items, products, args[0])
			if errors.Is(err, cartdomain.ErrDuplicateItem) {
				// Non-fatal: the cart is unchanged.
				fmt.Println("Item already in cart. Use the cart sidebar to update quantity or remove item.")
				showCart(updated)
				return nil
			}
			if err != nil {
				return cartUserError(err)
			}

			showCart(updated)
			return nil
		},
	}
}

func newCartSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <productId> <qty>",
		Short: "Set the absolute quantity for a product; 0 removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := newStorefront()
			if err != nil {
				return err
			}

			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity must be a number: %q", args[1])
			}

			ctx := cmd.Context()
			products, items, err := sf.loadCart(ctx)
			if err != nil {
				return cartUserError(err)
			}

			updated, err := sf.cart.SetQuantity(ctx, sf.sess.Token, items, products, args[0], qty, cartapp.SetQuantityOptions{})
			if err != nil {
				return cartUserError(err)
			}

			showCart(updated)
			return nil
		},
	}
}

func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Show the order summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := newStorefront()
			if err != nil {
				return err
			}

			_, items, err := sf.loadCart(cmd.Context())
			if err != nil {
				return cartUserError(err)
			}

			total := cartdomain.TotalValue(items)
			fmt.Println("Order Details")
			fmt.Printf("Products          %d\n", cartdomain.TotalItems(items))
			fmt.Printf("Subtotal          $%d\n", total)
			fmt.Printf("Shipping Charges  $0\n")
			fmt.Printf("Total             $%d\n", total)
			return nil
		},
	}
}

// cartUserError converts cart failures into the message the user sees.
func cartUserError(err error) error {
	switch {
	case errors.Is(err, cartdomain.ErrNotAuthenticated):
		return errors.New("Login to view or edit the cart")
	case errors.Is(err, cartdomain.ErrProductNotFound):
		return errors.New("Product doesn't exist")
	}

	var recErr *cartdomain.ReconciliationError
	if errors.As(err, &recErr) {
		return fmt.Errorf("cart is out of sync with the catalog: %v", recErr)
	}
	return errors.New(httpx.UserMessage(err))
}
