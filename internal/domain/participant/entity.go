package participant

import (
	"strconv"
	"strings"
	"time"
)

type Participant struct {
	id            ID
	displayName   string
	ownedItems    []string
	score         int
	cooldownUntil *time.Time
}

// New returns a zero-state participant: no items, no score, eligible now.
func New(id ID) *Participant {
	return &Participant{id: id}
}

// Reconstruct rebuilds a participant from persisted state without validation.
func Reconstruct(id ID, displayName string, ownedItems []string, score int, cooldownUntil *time.Time) *Participant {
	p := &Participant{
		id:          id,
		displayName: displayName,
		ownedItems:  append([]string(nil), ownedItems...),
		score:       score,
	}
	if cooldownUntil != nil {
		t := *cooldownUntil
		p.cooldownUntil = &t
	}
	return p
}

func (p *Participant) ID() ID          { return p.id }
func (p *Participant) Score() int      { return p.score }
func (p *Participant) ItemCount() int  { return len(p.ownedItems) }
func (p *Participant) HasClaimed() bool { return len(p.ownedItems) > 0 }

// DisplayName falls back to the synthetic "Player_<id>" form.
func (p *Participant) DisplayName() string {
	if p.displayName == "" {
		return FallbackName(p.id)
	}
	return p.displayName
}

func (p *Participant) HasDisplayName() bool { return p.displayName != "" }

func (p *Participant) OwnedItems() []string {
	return append([]string(nil), p.ownedItems...)
}

func (p *Participant) CooldownUntil() *time.Time {
	if p.cooldownUntil == nil {
		return nil
	}
	t := *p.cooldownUntil
	return &t
}

// RecordClaim appends the item and its points together so score always
// equals the sum of owned item values.
func (p *Participant) RecordClaim(item string, points int, until time.Time) error {
	if points < 0 {
		return ErrNegativePoints
	}
	if strings.TrimSpace(item) == "" {
		return ErrEmptyItem
	}
	p.ownedItems = append(p.ownedItems, item)
	p.score += points
	u := until
	p.cooldownUntil = &u
	return nil
}

// Rename reports whether the stored name changed.
func (p *Participant) Rename(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || name == p.displayName {
		return false
	}
	p.displayName = name
	return true
}

// Clone returns a deep copy safe to hand outside the store.
func (p *Participant) Clone() *Participant {
	return Reconstruct(p.id, p.displayName, p.ownedItems, p.score, p.cooldownUntil)
}

func FallbackName(id ID) string {
	return "Player_" + strconv.FormatInt(int64(id), 10)
}

// DisplayNameFrom joins the identity parts supplied by the messaging platform.
func DisplayNameFrom(firstName, lastName string) string {
	first := strings.TrimSpace(firstName)
	last := strings.TrimSpace(lastName)
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
