package commands

import (
	"context"
	"log/slog"
	"time"

	"card-drop/internal/domain/cooldown"
	"card-drop/internal/domain/participant"
	"card-drop/internal/pkg/clock"
	"card-drop/internal/pkg/errs"
	"card-drop/internal/usecase/shared"
)

type Outcome int

const (
	OutcomeSuccess Outcome = iota + 1
	OutcomeBlocked
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

type ClaimResult struct {
	Outcome       Outcome
	ItemID        string
	Points        int
	Score         int
	CooldownUntil time.Time
	// Remaining is set only for a blocked claim.
	Remaining time.Duration
}

type ClaimCommands interface {
	// Claim runs cooldown check, pick, commit and arm as one critical section
	// for the participant. A blocked claim is a result, not an error.
	Claim(ctx context.Context, id participant.ID) (*ClaimResult, error)
	// RegisterIdentity records the name the messaging platform reports.
	RegisterIdentity(ctx context.Context, id participant.ID, firstName, lastName string) error
}

// ItemPicker chooses the reward for a claim.
type ItemPicker interface {
	Pick() (string, error)
}

type claimUseCaseImpl struct {
	store     shared.ParticipantStore
	picker    ItemPicker
	scheduler shared.NotificationScheduler
	clock     clock.Clock
	logger    *slog.Logger
}

func NewClaimCommands(store shared.ParticipantStore, picker ItemPicker, scheduler shared.NotificationScheduler, clk clock.Clock, logger *slog.Logger) ClaimCommands {
	return &claimUseCaseImpl{
		store:     store,
		picker:    picker,
		scheduler: scheduler,
		clock:     clk,
		logger:    logger,
	}
}

func (uc *claimUseCaseImpl) Claim(ctx context.Context, id participant.ID) (*ClaimResult, error) {
	if id <= 0 {
		return nil, errs.ErrInvalidParticipantID
	}

	var result *ClaimResult
	err := uc.store.WithinParticipant(ctx, id, func(ctx context.Context, tx shared.ClaimTx) error {
		now := uc.clock.Now()
		p := tx.Participant()

		if elig := cooldown.Evaluate(p.CooldownUntil(), now); !elig.Eligible {
			result = &ClaimResult{
				Outcome:       OutcomeBlocked,
				Score:         p.Score(),
				CooldownUntil: *p.CooldownUntil(),
				Remaining:     elig.Remaining,
			}
			return nil
		}

		item, err := uc.picker.Pick()
		if err != nil {
			return err
		}

		receipt, err := tx.CommitClaim(ctx, item, now)
		if err != nil && !errs.Is(err, errs.ErrPersistenceFailure) {
			return err
		}

		// the cooldown is set in memory either way, so the reminder must follow it
		uc.scheduler.Arm(id, receipt.CooldownUntil)

		result = &ClaimResult{
			Outcome:       OutcomeSuccess,
			ItemID:        receipt.ItemID,
			Points:        receipt.Points,
			Score:         receipt.Score,
			CooldownUntil: receipt.CooldownUntil,
		}
		return err
	})
	if err != nil {
		if errs.Is(err, errs.ErrPersistenceFailure) {
			uc.logger.Error("claim committed in memory but not persisted",
				"participant_id", int64(id),
				"error", err)
		}
		return result, err
	}

	uc.logger.Info("claim processed",
		"participant_id", int64(id),
		"outcome", result.Outcome.String(),
		"item", result.ItemID,
		"points", result.Points,
		"score", result.Score)
	return result, nil
}

func (uc *claimUseCaseImpl) RegisterIdentity(ctx context.Context, id participant.ID, firstName, lastName string) error {
	if id <= 0 {
		return errs.ErrInvalidParticipantID
	}
	return uc.store.SetDisplayName(ctx, id, participant.DisplayNameFrom(firstName, lastName))
}
