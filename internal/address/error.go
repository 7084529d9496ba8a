package address

import "errors"

var (
	// -- Validation & Input --
	ErrMissingFields = errors.New("address is missing required fields")
	ErrMissingID     = errors.New("address id is required")

	// -- Confirmation Gate --
	ErrNothingToConfirm = errors.New("no pending confirmation")
)
