package order

import (
	"context"
	"time"

	"greenbasket-client/internal/logger"

	"go.uber.org/zap"
)

// Poller refreshes one order's status on a fixed interval while the
// tracking screen is open. Each cycle fetches and then waits, so a
// slow response delays the next request instead of overlapping it.
type Poller struct {
	repo     Repository
	orderID  string
	interval time.Duration
	onUpdate func(Order)
}

func NewPoller(repo Repository, orderID string, interval time.Duration, onUpdate func(Order)) *Poller {
	return &Poller{
		repo:     repo,
		orderID:  orderID,
		interval: interval,
		onUpdate: onUpdate,
	}
}

// Run fetches once immediately, then every interval until the order
// reaches a terminal status or ctx is cancelled. A failed fetch is
// logged and the loop keeps going; the next tick retries.
func (p *Poller) Run(ctx context.Context) error {
	for {
		o, err := p.repo.GetByID(ctx, p.orderID)
		if err != nil {
			logger.FromCtx(ctx).Warn("order status poll failed",
				zap.String("order_id", p.orderID),
				zap.Error(err),
			)
		} else {
			p.onUpdate(*o)
			if o.Status.Terminal() {
				return nil
			}
		}

		// The wait starts only after the fetch returns; a slow response
		// pushes the next request back instead of overlapping it.
		timer := time.NewTimer(p.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
