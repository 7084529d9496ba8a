package order

import "errors"

var (
	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")

	// -- Validation & Input --
	ErrMissingOrderID = errors.New("order id is required")
	ErrMissingReason  = errors.New("a reason is required")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
)
