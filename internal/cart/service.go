package cart

import (
	"context"
	"sync"

	"greenbasket-client/internal/line"
	"greenbasket-client/internal/logger"

	"go.uber.org/zap"
)

// Notifier surfaces write failures to the user (the toast analog).
type Notifier func(message string)

// Engine holds the authoritative server-fetched cart, applies
// optimistic local mutations and keeps the server aligned. Per-line
// mutations are serialized through a single-slot queue: a second
// +/- click on the same line while one call is in flight is rejected
// rather than racing it.
type Engine struct {
	repo   Repository
	notify Notifier

	mu       sync.Mutex
	order    []line.VariantKey
	lines    map[line.VariantKey]*Line
	selected map[line.VariantKey]bool
	inflight map[line.VariantKey]bool
	shipping float64

	wg sync.WaitGroup
}

func NewEngine(repo Repository, notify Notifier) *Engine {
	if notify == nil {
		notify = func(string) {}
	}
	return &Engine{
		repo:     repo,
		notify:   notify,
		lines:    map[line.VariantKey]*Line{},
		selected: map[line.VariantKey]bool{},
		inflight: map[line.VariantKey]bool{},
	}
}

// Load fetches the server cart and replaces local state wholesale,
// selecting every line. A failed read degrades to an empty cart.
func (e *Engine) Load(ctx context.Context) {
	payload, err := e.repo.GetCart(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.order = nil
	e.lines = map[line.VariantKey]*Line{}
	e.selected = map[line.VariantKey]bool{}
	e.shipping = 0

	if err != nil {
		logger.FromCtx(ctx).Warn("cart load failed, showing empty cart", zap.Error(err))
		return
	}

	for _, row := range payload.Items {
		it := line.FromCartRow(row)
		key := it.Key()
		if _, exists := e.lines[key]; exists {
			// one line per variant key; later duplicates fold in
			e.lines[key].Item.Quantity += it.Quantity
			continue
		}
		e.order = append(e.order, key)
		e.lines[key] = &Line{Item: it, State: Synced}
		e.selected[key] = true
	}
	e.shipping = payload.TotalShippingCharge
}

// IncrementOrDecrement applies a +/-1 quantity change optimistically
// and fires the matching server call without blocking the caller.
// Decrementing a quantity-one line is a no-op, not an error, and no
// call is issued. On server failure the engine re-fetches the
// authoritative cart rather than leaving the optimistic value in
// place.
func (e *Engine) IncrementOrDecrement(ctx context.Context, key line.VariantKey, delta int) error {
	if delta != 1 && delta != -1 {
		return ErrInvalidDelta
	}

	e.mu.Lock()
	l, ok := e.lines[key]
	if !ok {
		e.mu.Unlock()
		return ErrLineNotFound
	}

	newQty := l.Item.Quantity + delta
	if newQty < 1 {
		e.mu.Unlock()
		return nil
	}

	if e.inflight[key] {
		e.mu.Unlock()
		return ErrMutationInFlight
	}
	e.inflight[key] = true

	l.Item = line.Rescale(l.Item, newQty)
	l.State = PendingWrite

	it := l.Item
	e.mu.Unlock()

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()

		var err error
		if delta == 1 {
			err = e.repo.AddToCart(ctx, it.ProductCode, 1, it.WeightValue, it.WeightUnit)
		} else {
			err = e.repo.RemoveOneUnit(ctx, it.ProductCode, 1, it.WeightValue, it.WeightUnit)
		}

		e.mu.Lock()
		delete(e.inflight, key)
		if l, ok := e.lines[key]; ok {
			if err != nil {
				l.State = SyncError
			} else {
				l.State = Synced
			}
		}
		e.mu.Unlock()

		if err != nil {
			logger.FromCtx(ctx).Warn("cart mutation failed, reloading",
				zap.String("variant_key", string(key)),
				zap.Int("delta", delta),
				zap.Error(err),
			)
			e.notify("Could not update quantity, cart refreshed")
			e.Load(ctx)
		}
	}()

	return nil
}

// Remove deletes a whole line: server call first, local removal only
// on success.
func (e *Engine) Remove(ctx context.Context, key line.VariantKey) error {
	e.mu.Lock()
	l, ok := e.lines[key]
	if !ok {
		e.mu.Unlock()
		return ErrLineNotFound
	}
	it := l.Item
	e.mu.Unlock()

	if err := e.repo.RemoveLine(ctx, it.ProductCode, it.WeightValue, it.WeightUnit); err != nil {
		e.notify("Could not remove item")
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.lines, key)
	delete(e.selected, key)
	for i, k := range e.order {
		if k == key {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	return nil
}

// ToggleItem flips one line's selection. Unknown keys are ignored.
func (e *Engine) ToggleItem(key line.VariantKey) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.lines[key]; !ok {
		return
	}
	if e.selected[key] {
		delete(e.selected, key)
	} else {
		e.selected[key] = true
	}
}

// ToggleSelectAll selects every line, or clears the selection when
// everything is already selected.
func (e *Engine) ToggleSelectAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.allSelectedLocked() {
		e.selected = map[line.VariantKey]bool{}
		return
	}
	for key := range e.lines {
		e.selected[key] = true
	}
}

// AllSelected reports whether the selection equals the full key set.
func (e *Engine) AllSelected() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.allSelectedLocked()
}

func (e *Engine) allSelectedLocked() bool {
	if len(e.lines) == 0 {
		return false
	}
	for key := range e.lines {
		if !e.selected[key] {
			return false
		}
	}
	return true
}

// Lines returns the cart lines in server order.
func (e *Engine) Lines() []Line {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Line, 0, len(e.order))
	for _, key := range e.order {
		out = append(out, *e.lines[key])
	}
	return out
}

// SelectedItems returns the selected lines in server order, the set
// copied into a checkout snapshot.
func (e *Engine) SelectedItems() []line.Item {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]line.Item, 0, len(e.selected))
	for _, key := range e.order {
		if e.selected[key] {
			out = append(out, e.lines[key].Item)
		}
	}
	return out
}

// Summary folds the selected lines into the pre-checkout totals. Only
// selected lines contribute.
func (e *Engine) Summary() Totals {
	e.mu.Lock()
	defer e.mu.Unlock()

	var t Totals
	for _, key := range e.order {
		if !e.selected[key] {
			continue
		}
		it := e.lines[key].Item
		t.SubTotal += it.UnitPrice * float64(it.Quantity)
		t.Discount += it.DiscountPrice
		t.GST += it.GST
		t.Shipping += it.Shipping
		t.Payable += it.AfterDiscount + it.GST + it.Shipping
	}
	return t
}

// ShippingTotal is the server-computed aggregate delivery charge.
func (e *Engine) ShippingTotal() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.shipping
}

// Wait blocks until every in-flight mutation has settled.
func (e *Engine) Wait() {
	e.wg.Wait()
}
