package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"greenbasket-client/internal/address"
	"greenbasket-client/internal/cart"
	"greenbasket-client/internal/line"
	"greenbasket-client/internal/logger"
	"greenbasket-client/internal/order"

	"go.uber.org/zap"
)

// OrderPlacer is the slice of the order repository used at checkout.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req order.PlaceRequest) (string, error)
}

// Totals is the order-level price summary. Shipping is taken from the
// first line once (single shipment), not accumulated per line.
type Totals struct {
	SubTotal      float64
	Discount      float64
	AfterDiscount float64
	GST           float64
	Shipping      float64
	Payable       float64
}

// Service merges the persisted checkout snapshot with live cart and
// address state and submits the order-placement request.
type Service struct {
	snap     SnapshotStore
	cartRepo cart.Repository
	orders   OrderPlacer
	now      func() time.Time

	mu    sync.Mutex
	items []line.Item
}

func NewService(snap SnapshotStore, cartRepo cart.Repository, orders OrderPlacer) *Service {
	return &Service{
		snap:     snap,
		cartRepo: cartRepo,
		orders:   orders,
		now:      time.Now,
	}
}

// BeginFromCart copies the selected cart lines into the snapshot.
func (s *Service) BeginFromCart(items []line.Item) error {
	return s.begin(items)
}

// BeginBuyNow synthesizes a single-line snapshot from a product page.
func (s *Service) BeginBuyNow(b line.BuyNow) error {
	return s.begin([]line.Item{line.FromBuyNow(b, s.now())})
}

// BeginFromWishlist synthesizes a single-line snapshot from a
// wishlist entry.
func (s *Service) BeginFromWishlist(w line.WishlistEntry, qty int) error {
	return s.begin([]line.Item{line.FromWishlist(w, qty, s.now())})
}

// BeginReorder rebuilds a snapshot from a past order's lines.
func (s *Service) BeginReorder(orderItems []line.OrderItem) error {
	items := make([]line.Item, 0, len(orderItems))
	for _, oi := range orderItems {
		items = append(items, line.FromOrderItem(oi, s.now()))
	}
	return s.begin(items)
}

func (s *Service) begin(items []line.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.snap.Write(items); err != nil {
		return err
	}
	s.items = items
	return nil
}

// Hydrate reads the snapshot at screen entry. An absent or emptied
// snapshot returns ErrEmptySnapshot; the caller redirects home.
func (s *Service) Hydrate(ctx context.Context) ([]line.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.snap.Read()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		_ = s.snap.Write(nil)
		s.items = nil
		return nil, ErrEmptySnapshot
	}

	s.items = items
	return append([]line.Item(nil), items...), nil
}

// Items returns the current snapshot lines.
func (s *Service) Items() []line.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]line.Item(nil), s.items...)
}

// SyncCartBeforePayment adds every snapshot line absent from the live
// server cart, reconciling buy-now and reorder snapshots that were
// never added to the persistent cart.
func (s *Service) SyncCartBeforePayment(ctx context.Context) error {
	payload, err := s.cartRepo.GetCart(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCartSyncFailed, err)
	}

	inCart := map[line.VariantKey]bool{}
	for _, row := range payload.Items {
		inCart[line.FromCartRow(row).Key()] = true
	}

	for _, it := range s.Items() {
		if inCart[it.Key()] {
			continue
		}
		if err := s.cartRepo.AddToCart(ctx, it.ProductCode, it.Quantity, it.WeightValue, it.WeightUnit); err != nil {
			return fmt.Errorf("%w: %w", ErrCartSyncFailed, err)
		}
	}
	return nil
}

// ChangeLineQuantity sets a snapshot line to newQty, persists the
// snapshot immediately and issues a delta add/remove call to keep the
// server cart aligned. A failed server call leaves the persisted local
// value standing; the next full cart load reconciles.
func (s *Service) ChangeLineQuantity(ctx context.Context, key line.VariantKey, newQty int) error {
	if newQty < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	idx := -1
	for i, it := range s.items {
		if it.Key() == key {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return ErrLineNotFound
	}

	oldQty := s.items[idx].Quantity
	s.items[idx] = line.Reprice(s.items[idx], newQty)
	it := s.items[idx]
	err := s.snap.Write(s.items)
	s.mu.Unlock()

	if err != nil {
		return err
	}

	change := newQty - oldQty
	if change == 0 {
		return nil
	}

	if change > 0 {
		err = s.cartRepo.AddToCart(ctx, it.ProductCode, change, it.WeightValue, it.WeightUnit)
	} else {
		err = s.cartRepo.RemoveOneUnit(ctx, it.ProductCode, -change, it.WeightValue, it.WeightUnit)
	}
	if err != nil {
		logger.FromCtx(ctx).Warn("checkout quantity sync failed",
			zap.String("variant_key", string(key)),
			zap.Int("change", change),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// RemoveLine drops a snapshot line and persists. Removing the last
// line persists an empty snapshot and reports empty=true so the
// caller can redirect away; removing an absent line is a no-op.
func (s *Service) RemoveLine(ctx context.Context, key line.VariantKey) (empty bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, it := range s.items {
		if it.Key() != key {
			kept = append(kept, it)
		}
	}
	s.items = kept

	if err := s.snap.Write(s.items); err != nil {
		return false, err
	}
	return len(s.items) == 0, nil
}

// PlaceOrder submits the snapshot against the selected address. The
// snapshot is cleared only on success; on failure no partial order
// state is left client-side.
func (s *Service) PlaceOrder(ctx context.Context, addr *address.Address) (string, error) {
	if addr == nil {
		return "", ErrNoAddress
	}

	if err := s.SyncCartBeforePayment(ctx); err != nil {
		return "", err
	}

	req := order.PlaceRequest{Address: *addr}
	for _, it := range s.Items() {
		req.SelectedVariants = append(req.SelectedVariants, order.VariantRef{
			ProductCode: it.ProductCode,
			WeightValue: it.WeightValue,
			WeightUnit:  it.WeightUnit,
		})
	}

	orderID, err := s.orders.PlaceOrder(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPlaceOrderFailed, err)
	}

	s.mu.Lock()
	s.items = nil
	err = s.snap.Clear()
	s.mu.Unlock()
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to clear checkout snapshot", zap.Error(err))
	}

	logger.FromCtx(ctx).Info("order placed", zap.String("order_id", orderID))
	return orderID, nil
}

// Summary folds the snapshot into the order-level totals.
func (s *Service) Summary() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t Totals
	for i, it := range s.items {
		t.SubTotal += it.UnitPrice * float64(it.Quantity)
		t.Discount += it.DiscountPrice
		t.AfterDiscount += it.AfterDiscount
		t.GST += it.GST
		if i == 0 {
			t.Shipping = it.Shipping
		}
	}
	t.Payable = t.AfterDiscount + t.GST + t.Shipping
	return t
}
