package errs

import "errors"

// Sentinel errors shared by the store, the claim pipeline and the transports.
var (
	// Participant errors
	ErrInvalidParticipantID = errors.New("invalid participant id")

	// Claim errors
	ErrNoItemsAvailable       = errors.New("no items available")
	ErrConcurrentModification = errors.New("concurrent modification")

	// Operation errors
	ErrPersistenceFailure = errors.New("persistence failure")
	ErrDeliveryFailure    = errors.New("delivery failure")
)
