package order

import (
	"context"
	"sort"

	"greenbasket-client/internal/logger"

	"go.uber.org/zap"
)

// Service validates order operations before they reach the backend.
type Service interface {
	PlaceOrder(ctx context.Context, req PlaceRequest) (string, error)
	GetByID(ctx context.Context, orderID string) (*Order, error)
	History(ctx context.Context) ([]Order, error)
	Cancel(ctx context.Context, orderID, reason string) error
	SubmitReturn(ctx context.Context, req ReturnRequest) error
	SubmitReview(ctx context.Context, req ReviewRequest) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) PlaceOrder(ctx context.Context, req PlaceRequest) (string, error) {
	return s.repo.PlaceOrder(ctx, req)
}

func (s *service) GetByID(ctx context.Context, orderID string) (*Order, error) {
	if orderID == "" {
		return nil, ErrMissingOrderID
	}
	return s.repo.GetByID(ctx, orderID)
}

// History returns the user's orders newest first regardless of the
// order the backend happens to return them in.
func (s *service) History(ctx context.Context) ([]Order, error) {
	orders, err := s.repo.MyOrders(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
	return orders, nil
}

// Cancel requires a reason; the cancel dialog cannot be submitted
// blank.
func (s *service) Cancel(ctx context.Context, orderID, reason string) error {
	if orderID == "" {
		return ErrMissingOrderID
	}
	if reason == "" {
		return ErrMissingReason
	}

	if err := s.repo.Cancel(ctx, orderID, reason); err != nil {
		logger.FromCtx(ctx).Warn("order cancel failed",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) SubmitReturn(ctx context.Context, req ReturnRequest) error {
	if req.OrderID == "" {
		return ErrMissingOrderID
	}
	if req.Reason == "" {
		return ErrMissingReason
	}
	return s.repo.SubmitReturn(ctx, req)
}

func (s *service) SubmitReview(ctx context.Context, req ReviewRequest) error {
	if req.OrderID == "" {
		return ErrMissingOrderID
	}
	if req.Rating < 1 || req.Rating > 5 {
		return ErrInvalidRating
	}
	return s.repo.SubmitReview(ctx, req)
}
