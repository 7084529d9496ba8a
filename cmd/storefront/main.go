package main

import (
	"context"
	"errors"
	"time"

	"greenbasket-client/internal/address"
	"greenbasket-client/internal/api"
	"greenbasket-client/internal/cart"
	"greenbasket-client/internal/catalog"
	"greenbasket-client/internal/checkout"
	"greenbasket-client/internal/config"
	"greenbasket-client/internal/logger"
	"greenbasket-client/internal/order"
	"greenbasket-client/internal/session"
	"greenbasket-client/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	kv := store.New(cfg.StorePath)
	sess := loadSession(kv)

	client := api.NewClient(cfg.APIBaseURL, sess)

	cartRepo := cart.NewRepository(client)
	engine := cart.NewEngine(cartRepo, func(msg string) {
		logger.L().Warn("cart notice", zap.String("message", msg))
	})

	orderRepo := order.NewRepository(client)
	orderSvc := order.NewService(orderRepo)

	snap := checkout.NewSnapshotStore(kv)
	checkoutSvc := checkout.NewService(snap, cartRepo, orderRepo)

	addressBook := address.NewManager(address.NewRepository(client), kv)

	searcher := catalog.NewSearcher(
		catalog.NewRepository(client),
		catalog.DefaultSearchDelay,
		func(term string, products []catalog.Product, err error) {
			if err != nil {
				return
			}
			logger.L().Info("search results",
				zap.String("term", term),
				zap.Int("count", len(products)),
			)
		},
	)
	defer searcher.Stop()

	ctx := context.Background()
	if sess.LoggedIn() {
		engine.Load(ctx)
	}

	app := &App{
		Session:   sess,
		Cart:      engine,
		Checkout:  checkoutSvc,
		Orders:    orderSvc,
		OrderRepo: orderRepo,
		Addresses: addressBook,
		Search:    searcher,
		Poll:      cfg.PollInterval,
	}

	logger.L().Info("storefront ready",
		zap.String("api", cfg.APIBaseURL),
		zap.Bool("logged_in", sess.LoggedIn()),
		zap.Int("cart_lines", len(app.Cart.Lines())),
	)
}

// App bundles the wired services handed to the presentation layer.
type App struct {
	Session   *session.Session
	Cart      *cart.Engine
	Checkout  *checkout.Service
	Orders    order.Service
	OrderRepo order.Repository
	Addresses *address.Manager
	Search    *catalog.Searcher
	Poll      time.Duration
}

// TrackOrder runs a status poller for one order until it reaches a
// terminal state or ctx is cancelled.
func (a *App) TrackOrder(ctx context.Context, orderID string, onUpdate func(order.Order)) error {
	return order.NewPoller(a.OrderRepo, orderID, a.Poll, onUpdate).Run(ctx)
}

// loadSession restores the persisted token, falling back to an
// anonymous session when it is absent, invalid or expired.
func loadSession(kv *store.Store) *session.Session {
	var token string
	if err := kv.Get(store.KeyToken, &token); err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			logger.L().Warn("failed to read stored token", zap.Error(err))
		}
		return session.Anonymous()
	}

	sess, err := session.FromToken(token)
	if err != nil {
		logger.L().Warn("stored token unusable", zap.Error(err))
		return session.Anonymous()
	}
	if sess.Expired(time.Now()) {
		logger.L().Info("stored token expired", zap.String("user_id", sess.UserID))
		return session.Anonymous()
	}
	return sess
}
