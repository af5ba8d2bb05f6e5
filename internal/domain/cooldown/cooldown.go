package cooldown

import (
	"time"

	"card-drop/internal/pkg/errs"
)

var ErrInvalidDuration = errs.New("cooldown duration must be positive")

type Eligibility struct {
	Eligible  bool
	Remaining time.Duration
}

// Evaluate is eligible when until is absent or already reached. A blocked
// result carries the remaining time floored to whole seconds, never negative.
func Evaluate(until *time.Time, now time.Time) Eligibility {
	if until == nil || !now.Before(*until) {
		return Eligibility{Eligible: true}
	}
	remaining := until.Sub(now).Truncate(time.Second)
	if remaining < 0 {
		remaining = 0
	}
	return Eligibility{Remaining: remaining}
}

// Minutes and Seconds split the remaining time for "Xm Ys" display.
func (e Eligibility) Minutes() int {
	return int(e.Remaining / time.Minute)
}

func (e Eligibility) Seconds() int {
	return int((e.Remaining % time.Minute) / time.Second)
}

// Policy holds the single interval shared by every participant.
type Policy struct {
	Duration time.Duration
}

func NewPolicy(d time.Duration) (Policy, error) {
	if d <= 0 {
		return Policy{}, ErrInvalidDuration
	}
	return Policy{Duration: d}, nil
}

func (p Policy) NextUntil(now time.Time) time.Time {
	return now.Add(p.Duration)
}
