package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/qkart/storefront/internal/catalog/domain"
	"github.com/qkart/storefront/pkg/httpx"
)

func newAPI(t *testing.T, handler http.HandlerFunc) *ProductAPI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewProductAPI(httpx.New(srv.URL, 2*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestCatalog(t *testing.T) {
	api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[
			{"_id":"A","name":"iPhone XR","category":"Phones","cost":100,"rating":4,"image":"https://example.com/a.jpg"},
			{"_id":"B","name":"Basketball","category":"Sports","cost":50,"rating":5,"image":"https://example.com/b.jpg"}
		]`))
	})

	products, err := api.Catalog(context.Background())
	require.NoError(t, err)
	require.Equal(t, []domain.Product{
		{ID: "A", Name: "iPhone XR", Category: "Phones", Cost: 100, Rating: 4, ImageURL: "https://example.com/a.jpg"},
		{ID: "B", Name: "Basketball", Category: "Sports", Cost: 50, Rating: 5, ImageURL: "https://example.com/b.jpg"},
	}, products)
}

func TestSearch(t *testing.T) {
	t.Run("sends the query as value", func(t *testing.T) {
		api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/products/search", r.URL.Path)
			require.Equal(t, "running shoes", r.URL.Query().Get("value"))
			w.Write([]byte(`[{"_id":"C","name":"Sneakers"}]`))
		})

		products, err := api.Search(context.Background(), "running shoes")
		require.NoError(t, err)
		require.Len(t, products, 1)
		require.Equal(t, "C", products[0].ID)
	})

	t.Run("no matches is an empty slice, not an error", func(t *testing.T) {
		api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})

		products, err := api.Search(context.Background(), "zzz")
		require.NoError(t, err)
		require.Empty(t, products)
	})

	t.Run("backend failure surfaces the envelope message", func(t *testing.T) {
		api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":false,"message":"Something went wrong. Check the backend console for more details"}`))
		})

		_, err := api.Search(context.Background(), "iphone")

		var apiErr *httpx.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	})
}
