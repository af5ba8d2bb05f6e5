package shared

import (
	"context"
	"time"

	"card-drop/internal/domain/participant"
)

// ParticipantReader returns copies; callers may keep them.
type ParticipantReader interface {
	GetParticipant(id participant.ID) (*participant.Participant, bool)
	// Participants lists every record in first-seen order.
	Participants() []*participant.Participant
}

// ParticipantStore is the write side of the state store.
type ParticipantStore interface {
	ParticipantReader
	// WithinParticipant runs fn while holding the participant's lock. It fails
	// fast with errs.ErrConcurrentModification when the lock is taken.
	WithinParticipant(ctx context.Context, id participant.ID, fn func(ctx context.Context, tx ClaimTx) error) error
	SetDisplayName(ctx context.Context, id participant.ID, name string) error
}

type ClaimTx interface {
	// Participant returns a copy, or a zero-state record if none exists yet.
	Participant() *participant.Participant
	CommitClaim(ctx context.Context, itemID string, now time.Time) (ClaimReceipt, error)
}

type ClaimReceipt struct {
	ItemID        string
	Points        int
	Score         int
	CooldownUntil time.Time
}

type CatalogStore interface {
	AssignIfAbsent(ctx context.Context, itemIDs ...string) (int, error)
	PointValue(itemID string) int
	CatalogSize() int
}

type NotificationScheduler interface {
	Arm(id participant.ID, fireAt time.Time)
	Cancel(id participant.ID)
}

// Delivery sends text to a participant over the messaging transport.
type Delivery interface {
	Notify(ctx context.Context, id participant.ID, text string) error
}

// ItemSource lists the reward item identifiers currently available.
type ItemSource interface {
	ListItemIDs(ctx context.Context) ([]string, error)
}
