package address

import (
	"context"

	"greenbasket-client/internal/api"
)

// Repository abstracts the address endpoints. List and create are
// collection-scoped; the rest are addressId-scoped.
type Repository interface {
	List(ctx context.Context) ([]Address, error)
	Create(ctx context.Context, addr Address) (*Address, error)
	Update(ctx context.Context, addr Address) (*Address, error)
	Delete(ctx context.Context, addressID string) error
	SetDefault(ctx context.Context, addressID string) error
}

type repository struct {
	client *api.Client
}

func NewRepository(client *api.Client) Repository {
	return &repository{client: client}
}

func (r *repository) List(ctx context.Context) ([]Address, error) {
	var out []Address
	if err := r.client.Get(ctx, api.EndpointListAddresses, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) Create(ctx context.Context, addr Address) (*Address, error) {
	var out Address
	if err := r.client.Post(ctx, api.EndpointCreateAddress, nil, addr, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repository) Update(ctx context.Context, addr Address) (*Address, error) {
	var out Address
	path := api.PathWithID(api.EndpointUpdateAddress, addr.AddressID)
	if err := r.client.Put(ctx, path, nil, addr, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repository) Delete(ctx context.Context, addressID string) error {
	path := api.PathWithID(api.EndpointDeleteAddress, addressID)
	return r.client.Delete(ctx, path, nil, nil)
}

func (r *repository) SetDefault(ctx context.Context, addressID string) error {
	path := api.PathWithID(api.EndpointDefaultAddress, addressID)
	return r.client.Post(ctx, path, nil, nil, nil)
}
