package statestore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"card-drop/internal/domain/catalog"
	"card-drop/internal/domain/cooldown"
	"card-drop/internal/domain/participant"
	"card-drop/internal/infra"
	"card-drop/internal/infra/snapshot"
	"card-drop/internal/pkg/clock"
	"card-drop/internal/pkg/errs"
	"card-drop/internal/pkg/random"
	"card-drop/internal/usecase/shared"
)

const defaultFlushTimeout = 5 * time.Second

type Options struct {
	Clock        clock.Clock
	Random       random.Source
	Points       catalog.PointRange
	Cooldown     cooldown.Policy
	FlushTimeout time.Duration
	Logger       *slog.Logger
}

// Store is the single source of truth for participants and the catalog.
// Every mutation bumps version; flushes write a full snapshot and record the
// version they covered, so a failed flush is retried by the next one.
type Store struct {
	backend      snapshot.Backend
	clock        clock.Clock
	rnd          random.Source
	points       catalog.PointRange
	policy       cooldown.Policy
	flushTimeout time.Duration
	logger       *slog.Logger

	mu           sync.RWMutex
	participants map[participant.ID]*participant.Participant
	order        []participant.ID
	catalog      *catalog.Catalog
	version      uint64

	locksMu sync.Mutex
	locks   map[participant.ID]*sync.Mutex

	persistMu    sync.Mutex
	savedVersion uint64
}

// Open loads the latest snapshot from backend. A missing snapshot starts an
// empty store; any other load error is returned.
func Open(ctx context.Context, backend snapshot.Backend, opts Options) (*Store, error) {
	s := &Store{
		backend:      backend,
		clock:        opts.Clock,
		rnd:          opts.Random,
		points:       opts.Points,
		policy:       opts.Cooldown,
		flushTimeout: opts.FlushTimeout,
		logger:       opts.Logger,
		participants: make(map[participant.ID]*participant.Participant),
		catalog:      catalog.New(),
		locks:        make(map[participant.ID]*sync.Mutex),
	}
	if s.clock == nil {
		s.clock = clock.NewRealClock()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.flushTimeout <= 0 {
		s.flushTimeout = defaultFlushTimeout
	}
	if s.points == (catalog.PointRange{}) {
		s.points = catalog.DefaultPointRange()
	}
	if s.rnd == nil {
		src, err := random.NewSource()
		if err != nil {
			return nil, err
		}
		s.rnd = src
	}

	doc, err := backend.Load(ctx)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		s.logger.Info("no snapshot found, starting with empty state")
		return s, nil
	case err != nil:
		return nil, errs.Wrap(err, "failed to load state snapshot")
	}

	repaired := s.restore(doc)
	// loading is not a mutation; only repairs make the state dirty
	s.savedVersion = s.version
	if repaired {
		s.version++
	}
	s.logger.Info("state snapshot loaded",
		"participants", len(s.participants),
		"catalog_items", s.catalog.Len(),
		"repaired", repaired)
	return s, nil
}

func (s *Store) draw() int {
	return s.points.Draw(s.rnd)
}

// GetParticipant returns a copy of the stored record.
func (s *Store) GetParticipant(id participant.ID) (*participant.Participant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.participants[id]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

// Participants returns copies in first-seen order.
func (s *Store) Participants() []*participant.Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*participant.Participant, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.participants[id].Clone())
	}
	return out
}

func (s *Store) WithinParticipant(ctx context.Context, id participant.ID, fn func(ctx context.Context, tx shared.ClaimTx) error) error {
	lock := s.participantLock(id)
	if !lock.TryLock() {
		return errs.Wrapf(errs.ErrConcurrentModification, "participant %d has a claim in flight", id)
	}
	defer lock.Unlock()

	return fn(ctx, &claimTx{store: s, id: id})
}

func (s *Store) participantLock(id participant.ID) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// SetDisplayName creates the participant on first contact. An unchanged name
// is a no-op and does not flush.
func (s *Store) SetDisplayName(ctx context.Context, id participant.ID, name string) error {
	s.mu.Lock()
	p, created := s.getOrCreateLocked(id)
	renamed := p.Rename(name)
	if created || renamed {
		s.version++
	}
	s.mu.Unlock()

	if !created && !renamed {
		return nil
	}
	return s.flush(ctx)
}

// AssignIfAbsent gives every unseen item a point value and reports how many
// were new.
func (s *Store) AssignIfAbsent(ctx context.Context, itemIDs ...string) (int, error) {
	s.mu.Lock()
	added := 0
	for _, id := range itemIDs {
		if _, created := s.catalog.AssignIfAbsent(id, s.draw); created {
			added++
		}
	}
	if added > 0 {
		s.version++
	}
	s.mu.Unlock()

	if added == 0 {
		return 0, nil
	}
	return added, s.flush(ctx)
}

// PointValue returns 0 for unknown items.
func (s *Store) PointValue(itemID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.PointValue(itemID)
}

func (s *Store) CatalogSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Len()
}

func (s *Store) Dirty() bool {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version != s.savedVersion
}

// Persist flushes the full snapshot if anything changed since the last
// successful flush.
func (s *Store) Persist(ctx context.Context) error {
	return s.flush(ctx)
}

// Close makes a last flush attempt.
func (s *Store) Close(ctx context.Context) error {
	if !s.Dirty() {
		return nil
	}
	return s.flush(ctx)
}

func (s *Store) getOrCreateLocked(id participant.ID) (*participant.Participant, bool) {
	if p, ok := s.participants[id]; ok {
		return p, false
	}
	p := participant.New(id)
	s.participants[id] = p
	s.order = append(s.order, id)
	return p, true
}

func (s *Store) flush(ctx context.Context) error {
	// a client going away must not abort a durable write
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.flushTimeout)
	defer cancel()

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.RLock()
	if s.version == s.savedVersion {
		s.mu.RUnlock()
		return nil
	}
	doc := s.documentLocked()
	v := s.version
	s.mu.RUnlock()

	doc.SavedAt = s.clock.Now().UTC()
	if err := s.backend.Save(ctx, doc); err != nil {
		s.logger.Error("failed to persist state snapshot",
			"version", v,
			"error", err)
		return errs.Mark(errs.Wrap(err, "failed to persist state snapshot"), errs.ErrPersistenceFailure)
	}
	s.savedVersion = v
	return nil
}

type claimTx struct {
	store *Store
	id    participant.ID
}

func (tx *claimTx) Participant() *participant.Participant {
	p, ok := tx.store.GetParticipant(tx.id)
	if !ok {
		return participant.New(tx.id)
	}
	return p
}

// CommitClaim assigns the item a value if it has none, records it on the
// participant together with its points and the new cooldown, then flushes.
// On a flush failure the receipt is still returned: the in-memory effect
// stands and the next mutation retries durability.
func (tx *claimTx) CommitClaim(ctx context.Context, itemID string, now time.Time) (shared.ClaimReceipt, error) {
	s := tx.store

	s.mu.Lock()
	points, _ := s.catalog.AssignIfAbsent(itemID, s.draw)
	p, _ := s.getOrCreateLocked(tx.id)
	until := s.policy.NextUntil(now)
	if err := p.RecordClaim(itemID, points, until); err != nil {
		s.mu.Unlock()
		return shared.ClaimReceipt{}, err
	}
	s.version++
	receipt := shared.ClaimReceipt{
		ItemID:        itemID,
		Points:        points,
		Score:         p.Score(),
		CooldownUntil: until,
	}
	s.mu.Unlock()

	return receipt, s.flush(ctx)
}

var _ shared.ParticipantStore = (*Store)(nil)
var _ shared.CatalogStore = (*Store)(nil)
