package cart

import (
	"context"
	"net/url"
	"strconv"

	"greenbasket-client/internal/api"
	"greenbasket-client/internal/line"
)

// Payload is the get-cart response: the line records plus the
// aggregate shipping charge computed server-side.
type Payload struct {
	Items               []line.CartRow `json:"items"`
	TotalShippingCharge float64        `json:"totalShippingCharge"`
}

// Repository abstracts the cart endpoints.
type Repository interface {
	GetCart(ctx context.Context) (*Payload, error)
	AddToCart(ctx context.Context, productCode string, quantity int, weightValue float64, weightUnit string) error
	RemoveOneUnit(ctx context.Context, productCode string, quantity int, weightValue float64, weightUnit string) error
	RemoveLine(ctx context.Context, productCode string, weightValue float64, weightUnit string) error
}

type repository struct {
	client *api.Client
}

func NewRepository(client *api.Client) Repository {
	return &repository{client: client}
}

func (r *repository) GetCart(ctx context.Context) (*Payload, error) {
	var payload Payload
	if err := r.client.Get(ctx, api.EndpointGetCart, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (r *repository) AddToCart(ctx context.Context, productCode string, quantity int, weightValue float64, weightUnit string) error {
	q := variantQuery(productCode, weightValue, weightUnit)
	q.Set("quantity", strconv.Itoa(quantity))
	return r.client.Post(ctx, api.EndpointAddToCart, q, nil, nil)
}

func (r *repository) RemoveOneUnit(ctx context.Context, productCode string, quantity int, weightValue float64, weightUnit string) error {
	q := variantQuery(productCode, weightValue, weightUnit)
	q.Set("quantity", strconv.Itoa(quantity))
	return r.client.Delete(ctx, api.EndpointRemoveOneUnit, q, nil)
}

func (r *repository) RemoveLine(ctx context.Context, productCode string, weightValue float64, weightUnit string) error {
	q := variantQuery(productCode, weightValue, weightUnit)
	return r.client.Delete(ctx, api.EndpointRemoveCartLine, q, nil)
}

func variantQuery(productCode string, weightValue float64, weightUnit string) url.Values {
	q := url.Values{}
	q.Set("productCode", productCode)
	q.Set("weightValue", strconv.FormatFloat(weightValue, 'f', -1, 64))
	q.Set("weightUnit", weightUnit)
	return q
}
