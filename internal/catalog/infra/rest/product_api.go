package rest

import (
	"context"
	"net/url"

	"github.com/qkart/storefront/internal/catalog/domain"
	"github.com/qkart/storefront/pkg/httpx"
)

// ProductAPI reads the catalog over the backend's public product endpoints.
type ProductAPI struct {
	client *httpx.Client
}

func NewProductAPI(client *httpx.Client) *ProductAPI {
	return &ProductAPI{client: client}
}

func (a *ProductAPI) Catalog(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := a.client.Get(ctx, "/products", nil, "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (a *ProductAPI) Search(ctx context.Context, query string) ([]domain.Product, error) {
	q := url.Values{"value": {query}}

	var products []domain.Product
	if err := a.client.Get(ctx, "/products/search", q, "", &products); err != nil {
		return nil, err
	}
	return products, nil
}
