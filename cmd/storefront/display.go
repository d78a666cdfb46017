package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	cartdomain "github.com/qkart/storefront/internal/cart/domain"
	"github.com/qkart/storefront/internal/catalog/domain"
)

// terminalDisplay renders product lists and notifications. It implements the
// catalog app's Display and Notifier ports.
type terminalDisplay struct{}

func (terminalDisplay) ShowProducts(products []domain.Product) {
	if len(products) == 0 {
		fmt.Println("No products found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tCOST\tRATING")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%d\t%s\n", p.ID, p.Name, p.Category, p.Cost, stars(p.Rating))
	}
	w.Flush()
}

func (terminalDisplay) Error(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("*", rating)
}

func showCart(items []cartdomain.LineItem) {
	if len(items) == 0 {
		fmt.Println("Cart is empty. Add more items to the cart to checkout.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQTY\tCOST\tSUBTOTAL")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\t$%d\t$%d\n", it.ProductID, it.Name, it.Quantity, it.Cost, int64(it.Quantity)*it.Cost)
	}
	w.Flush()

	fmt.Printf("Order total: $%d\n", cartdomain.TotalValue(items))
}
