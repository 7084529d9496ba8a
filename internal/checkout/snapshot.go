package checkout

import (
	"errors"

	"greenbasket-client/internal/line"
	"greenbasket-client/internal/store"
)

// SnapshotStore persists the checkout snapshot: the ordered list of
// items the user intends to purchase, bridging the cart, buy-now,
// wishlist and reorder entry flows.
type SnapshotStore interface {
	Read() ([]line.Item, error)
	Write(items []line.Item) error
	Clear() error
}

type snapshotStore struct {
	kv *store.Store
}

func NewSnapshotStore(kv *store.Store) SnapshotStore {
	return &snapshotStore{kv: kv}
}

func (s *snapshotStore) Read() ([]line.Item, error) {
	var items []line.Item
	err := s.kv.Get(store.KeyCheckoutItems, &items)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *snapshotStore) Write(items []line.Item) error {
	if items == nil {
		items = []line.Item{}
	}
	return s.kv.Set(store.KeyCheckoutItems, items)
}

func (s *snapshotStore) Clear() error {
	return s.kv.Delete(store.KeyCheckoutItems)
}
