package order

import (
	"context"
	"net/http"
	"strconv"

	"greenbasket-client/internal/api"
)

// Repository talks to the order endpoints of the backend.
type Repository interface {
	PlaceOrder(ctx context.Context, req PlaceRequest) (string, error)
	GetByID(ctx context.Context, orderID string) (*Order, error)
	MyOrders(ctx context.Context) ([]Order, error)
	Cancel(ctx context.Context, orderID, reason string) error
	SubmitReturn(ctx context.Context, req ReturnRequest) error
	SubmitReview(ctx context.Context, req ReviewRequest) error
}

type repository struct {
	client *api.Client
}

func NewRepository(client *api.Client) Repository {
	return &repository{client: client}
}

func (r *repository) PlaceOrder(ctx context.Context, req PlaceRequest) (string, error) {
	var resp struct {
		OrderID string `json:"orderId"`
	}
	if err := r.client.Post(ctx, api.EndpointPlaceOrder, nil, req, &resp); err != nil {
		return "", err
	}
	return resp.OrderID, nil
}

func (r *repository) GetByID(ctx context.Context, orderID string) (*Order, error) {
	var o Order
	err := r.client.Get(ctx, api.PathWithID(api.EndpointOrderByID, orderID), nil, &o)
	if api.IsStatus(err, http.StatusNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) MyOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := r.client.Get(ctx, api.EndpointMyOrders, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) Cancel(ctx context.Context, orderID, reason string) error {
	body := struct {
		OrderID string `json:"orderId"`
		Reason  string `json:"reason"`
	}{OrderID: orderID, Reason: reason}
	return r.client.Post(ctx, api.EndpointCancelOrder, nil, body, nil)
}

func (r *repository) SubmitReturn(ctx context.Context, req ReturnRequest) error {
	fields := map[string]string{
		"orderId": req.OrderID,
		"reason":  req.Reason,
		"message": req.Message,
	}

	var files []api.FilePart
	for _, img := range req.Images {
		files = append(files, api.FilePart{Field: "images", Name: img.Name, Content: img.Content})
	}
	if req.Video != nil {
		files = append(files, api.FilePart{Field: "video", Name: req.Video.Name, Content: req.Video.Content})
	}

	return r.client.PostMultipart(ctx, api.EndpointSubmitReturn, fields, files, nil)
}

func (r *repository) SubmitReview(ctx context.Context, req ReviewRequest) error {
	fields := map[string]string{
		"orderId": req.OrderID,
		"rating":  strconv.Itoa(req.Rating),
		"comment": req.Comment,
	}

	var files []api.FilePart
	for _, img := range req.Images {
		files = append(files, api.FilePart{Field: "images", Name: img.Name, Content: img.Content})
	}

	return r.client.PostMultipart(ctx, api.EndpointSubmitReview, fields, files, nil)
}
