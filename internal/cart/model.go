package cart

import "greenbasket-client/internal/line"

// SyncState tracks a line's reconciliation against the server cart.
type SyncState int

const (
	// Synced: the local line matches the last server acknowledgement.
	Synced SyncState = iota
	// PendingWrite: an optimistic local mutation has been applied and
	// its server call is in flight.
	PendingWrite
	// SyncError: the server call failed; a full reload reconciles.
	SyncError
)

// Line pairs the canonical item with its sync state.
type Line struct {
	Item  line.Item
	State SyncState
}

// Totals is the fold over the selected lines shown before checkout.
type Totals struct {
	SubTotal float64
	Discount float64
	GST      float64
	Shipping float64
	Payable  float64
}
