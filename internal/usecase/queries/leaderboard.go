package queries

import (
	"context"
	"slices"

	"card-drop/internal/domain/cooldown"
	"card-drop/internal/domain/participant"
	"card-drop/internal/pkg/clock"
	"card-drop/internal/pkg/errs"
	"card-drop/internal/pkg/ptr"
	"card-drop/internal/usecase/shared"
)

type CatalogReadStore interface {
	CatalogSize() int
}

type InventoryReader interface {
	Items() []string
}

type LeaderboardQueries interface {
	Status(ctx context.Context, id participant.ID) (*StatusView, error)
	// Top returns at most n entries ordered by score, highest first.
	Top(ctx context.Context, n int) ([]LeaderboardEntry, error)
	// RankOf returns nil for a participant that never claimed.
	RankOf(ctx context.Context, id participant.ID) (*int, error)
	Stats(ctx context.Context) (*StatsView, error)
}

type leaderboardQueriesImpl struct {
	store     shared.ParticipantReader
	catalog   CatalogReadStore
	inventory InventoryReader
	clock     clock.Clock
}

func NewLeaderboardQueries(store shared.ParticipantReader, catalog CatalogReadStore, inventory InventoryReader, clk clock.Clock) LeaderboardQueries {
	return &leaderboardQueriesImpl{store: store, catalog: catalog, inventory: inventory, clock: clk}
}

// ranked orders claimers by score, highest first. Equal scores keep
// first-seen order. The full sort is fine at this scale.
func (q *leaderboardQueriesImpl) ranked() []*participant.Participant {
	all := q.store.Participants()
	claimers := make([]*participant.Participant, 0, len(all))
	for _, p := range all {
		if p.HasClaimed() {
			claimers = append(claimers, p)
		}
	}
	slices.SortStableFunc(claimers, func(a, b *participant.Participant) int {
		return b.Score() - a.Score()
	})
	return claimers
}

func (q *leaderboardQueriesImpl) Top(_ context.Context, n int) ([]LeaderboardEntry, error) {
	if n <= 0 {
		return []LeaderboardEntry{}, nil
	}
	ranked := q.ranked()
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]LeaderboardEntry, 0, len(ranked))
	for i, p := range ranked {
		out = append(out, LeaderboardEntry{
			Rank:        i + 1,
			ID:          p.ID(),
			DisplayName: p.DisplayName(),
			Score:       p.Score(),
			ItemCount:   p.ItemCount(),
		})
	}
	return out, nil
}

func (q *leaderboardQueriesImpl) RankOf(_ context.Context, id participant.ID) (*int, error) {
	if id <= 0 {
		return nil, errs.ErrInvalidParticipantID
	}
	return rankIn(q.ranked(), id), nil
}

func rankIn(ranked []*participant.Participant, id participant.ID) *int {
	for i, p := range ranked {
		if p.ID() == id {
			return ptr.Of(i + 1)
		}
	}
	return nil
}

// Status never fails for an unknown id; it describes a zero-state participant.
func (q *leaderboardQueriesImpl) Status(_ context.Context, id participant.ID) (*StatusView, error) {
	if id <= 0 {
		return nil, errs.ErrInvalidParticipantID
	}
	p, ok := q.store.GetParticipant(id)
	if !ok {
		p = participant.New(id)
	}
	elig := cooldown.Evaluate(p.CooldownUntil(), q.clock.Now())
	view := &StatusView{
		ID:          id,
		DisplayName: p.DisplayName(),
		Eligible:    elig.Eligible,
		Remaining:   elig.Remaining,
		Score:       p.Score(),
		ItemCount:   p.ItemCount(),
		Items:       p.OwnedItems(),
	}
	if !elig.Eligible {
		view.CooldownUntil = p.CooldownUntil()
	}
	if p.HasClaimed() {
		view.Rank = rankIn(q.ranked(), id)
	}
	return view, nil
}

func (q *leaderboardQueriesImpl) Stats(_ context.Context) (*StatsView, error) {
	all := q.store.Participants()
	view := &StatsView{
		Participants: len(all),
		CatalogSize:  q.catalog.CatalogSize(),
		AvailableNow: len(q.inventory.Items()),
	}
	for _, p := range all {
		if p.HasClaimed() {
			view.Claimers++
		}
		view.ItemsOwned += p.ItemCount()
		view.TotalPoints += p.Score()
	}
	return view, nil
}
