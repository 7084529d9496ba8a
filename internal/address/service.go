package address

import (
	"context"
	"errors"
	"sync"

	"greenbasket-client/internal/logger"
	"greenbasket-client/internal/store"

	"go.uber.org/zap"
)

// Manager drives the address book: CRUD over the backend plus the
// display ordering rule and the destructive-action confirmation gate.
type Manager struct {
	repo Repository
	kv   *store.Store

	mu      sync.Mutex
	confirm Confirmation
}

func NewManager(repo Repository, kv *store.Store) *Manager {
	return &Manager{repo: repo, kv: kv}
}

// List fetches the address book, filters incomplete entries from
// display and floats the recently-added or default address to the
// top, preserving the relative order of the rest.
func (m *Manager) List(ctx context.Context) ([]Address, error) {
	all, err := m.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	complete := make([]Address, 0, len(all))
	for _, a := range all {
		if a.Complete() {
			complete = append(complete, a)
		}
	}

	return Reorder(complete, m.recentHint()), nil
}

// Reorder applies the floating rule: the recently-added address if the
// hint resolves, else the default-flagged entry, else index 0 moves to
// the front; everything else keeps its original relative order.
func Reorder(addrs []Address, recentID string) []Address {
	if len(addrs) == 0 {
		return addrs
	}

	idx := -1
	if recentID != "" {
		for i, a := range addrs {
			if a.AddressID == recentID {
				idx = i
				break
			}
		}
	}
	if idx == -1 {
		for i, a := range addrs {
			if a.Default {
				idx = i
				break
			}
		}
	}
	if idx <= 0 {
		return addrs
	}

	out := make([]Address, 0, len(addrs))
	out = append(out, addrs[idx])
	out = append(out, addrs[:idx]...)
	out = append(out, addrs[idx+1:]...)
	return out
}

// Create validates and upserts a new address. On success the id is
// remembered as the recently-added hint so the next List floats it.
func (m *Manager) Create(ctx context.Context, addr Address) (*Address, error) {
	if err := validate(addr); err != nil {
		return nil, err
	}

	created, err := m.repo.Create(ctx, addr)
	if err != nil {
		return nil, err
	}

	if created.AddressID != "" {
		if err := m.kv.Set(store.KeyRecentAddress, created.AddressID); err != nil {
			logger.FromCtx(ctx).Warn("failed to remember recent address", zap.Error(err))
		}
	}

	logger.FromCtx(ctx).Info("address created", zap.String("address_id", created.AddressID))
	return created, nil
}

// Update validates and upserts an existing address. The default flag
// is not bundled here; SetDefault is its own call.
func (m *Manager) Update(ctx context.Context, addr Address) (*Address, error) {
	if addr.AddressID == "" {
		return nil, ErrMissingID
	}
	if err := validate(addr); err != nil {
		return nil, err
	}
	return m.repo.Update(ctx, addr)
}

// RequestDelete arms the confirmation gate for a delete.
func (m *Manager) RequestDelete(addressID string) {
	m.setConfirm(Confirmation{Kind: ConfirmDelete, AddressID: addressID})
}

// RequestSetDefault arms the confirmation gate for a default change.
func (m *Manager) RequestSetDefault(addressID string) {
	m.setConfirm(Confirmation{Kind: ConfirmDefault, AddressID: addressID})
}

// Pending returns the armed confirmation, if any.
func (m *Manager) Pending() Confirmation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.confirm
}

// Dismiss clears the gate without acting.
func (m *Manager) Dismiss() {
	m.setConfirm(Confirmation{})
}

// Confirm executes the armed destructive action and clears the gate.
func (m *Manager) Confirm(ctx context.Context) error {
	m.mu.Lock()
	pending := m.confirm
	m.confirm = Confirmation{}
	m.mu.Unlock()

	switch pending.Kind {
	case ConfirmDelete:
		return m.repo.Delete(ctx, pending.AddressID)
	case ConfirmDefault:
		return m.repo.SetDefault(ctx, pending.AddressID)
	default:
		return ErrNothingToConfirm
	}
}

func (m *Manager) setConfirm(c Confirmation) {
	m.mu.Lock()
	m.confirm = c
	m.mu.Unlock()
}

func (m *Manager) recentHint() string {
	var id string
	if err := m.kv.Get(store.KeyRecentAddress, &id); err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			logger.L().Warn("failed to read recent address hint", zap.Error(err))
		}
		return ""
	}
	return id
}

func validate(addr Address) error {
	required := []string{
		addr.AddressLine1,
		addr.City,
		addr.State,
		addr.PostalCode,
		addr.Country,
	}
	for _, v := range required {
		if v == "" {
			return ErrMissingFields
		}
	}
	return nil
}
