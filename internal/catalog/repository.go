package catalog

import (
	"context"
	"net/url"

	"greenbasket-client/internal/api"
)

// Repository talks to the product search endpoint.
type Repository interface {
	Search(ctx context.Context, name string) ([]Product, error)
}

type repository struct {
	client *api.Client
}

func NewRepository(client *api.Client) Repository {
	return &repository{client: client}
}

func (r *repository) Search(ctx context.Context, name string) ([]Product, error) {
	query := url.Values{}
	query.Set("name", name)

	var products []Product
	if err := r.client.Get(ctx, api.EndpointSearchProducts, query, &products); err != nil {
		return nil, err
	}
	return products, nil
}
