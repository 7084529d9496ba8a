package checkout

import "errors"

var (
	// -- Validation & Input --
	ErrNoAddress       = errors.New("no delivery address selected")
	ErrInvalidQuantity = errors.New("quantity must be at least one")
	ErrLineNotFound    = errors.New("checkout line not found")

	// -- Resource State --
	ErrEmptySnapshot = errors.New("checkout snapshot is empty")

	// -- Operation Failures --
	ErrCartSyncFailed   = errors.New("failed to sync cart before payment")
	ErrPlaceOrderFailed = errors.New("failed to place order")
)
