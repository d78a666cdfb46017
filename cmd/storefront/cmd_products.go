package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	catalogapp "github.com/qkart/storefront/internal/catalog/app"
	"github.com/qkart/storefront/pkg/httpx"
	"github.com/qkart/storefront/pkg/shutdown"
)

func newProductsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products [query]",
		Short: "List the catalog, or search it once",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := newStorefront()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			if len(args) == 0 {
				list, err := sf.products.Catalog(ctx)
				if err != nil {
					return errors.New(httpx.UserMessage(err))
				}
				terminalDisplay{}.ShowProducts(list)
				return nil
			}

			list, err := sf.products.Search(ctx, args[0])
			if err != nil {
				return errors.New(httpx.UserMessage(err))
			}
			terminalDisplay{}.ShowProducts(list)
			return nil
		},
	}
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search",
		Short: "Search as you type: each line re-runs the search, blank resets",
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := newStorefront()
			if err != nil {
				return err
			}

			ctx, cancel := shutdown.WithSignals(context.Background())
			defer cancel()

			display := terminalDisplay{}
			controller := catalogapp.NewSearchController(ctx, sf.products, display, display, sf.cfg.SearchDebounce, sf.log)
			defer controller.Close()

			// Initial view is the full catalog, same as the products page
			// on mount.
			list, err := controller.LoadCatalog(ctx)
			if err != nil {
				display.Error(httpx.UserMessage(err))
			} else {
				display.ShowProducts(list)
			}

			fmt.Println("Type to search, empty line to reset, Ctrl-C to quit.")

			lines := make(chan string)
			go func() {
				defer close(lines)
				scanner := bufio.NewScanner(os.Stdin)
				for scanner.Scan() {
					lines <- scanner.Text()
				}
			}()

			for {
				select {
				case <-ctx.Done():
					return nil
				case line, ok := <-lines:
					if !ok {
						return nil
					}
					controller.OnInputChange(strings.TrimSpace(line))
				}
			}
		},
	}
}
