package cart

import "errors"

var (
	// -- Resource State --
	ErrLineNotFound = errors.New("cart line not found")

	// -- Mutation Serialization --
	ErrMutationInFlight = errors.New("mutation already in flight for this line")

	// -- Validation & Input --
	ErrInvalidDelta = errors.New("quantity delta must be +1 or -1")
)
