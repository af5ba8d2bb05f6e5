//go:build unit

package statestore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"card-drop/internal/domain/catalog"
	"card-drop/internal/domain/cooldown"
	"card-drop/internal/domain/participant"
	"card-drop/internal/infra"
	"card-drop/internal/infra/snapshot"
	"card-drop/internal/infra/statestore"
	"card-drop/internal/pkg/clock"
	"card-drop/internal/pkg/errs"
	"card-drop/internal/pkg/random"
	"card-drop/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type memoryBackend struct {
	mu      sync.Mutex
	doc     *snapshot.Document
	saves   int
	saveErr error
}

func (b *memoryBackend) Load(_ context.Context) (*snapshot.Document, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.doc == nil {
		return nil, infra.WrapRepoErr(nil, infra.KindNotFound, "no snapshot", nil)
	}
	data, err := snapshot.Encode(b.doc)
	if err != nil {
		return nil, err
	}
	return snapshot.Decode(nil, data)
}

func (b *memoryBackend) Save(_ context.Context, doc *snapshot.Document) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.saveErr != nil {
		return b.saveErr
	}
	b.doc = doc
	b.saves++
	return nil
}

func (b *memoryBackend) setSaveErr(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.saveErr = err
}

func (b *memoryBackend) saveCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.saves
}

type StoreTestSuite struct {
	suite.Suite
	ctx     context.Context
	backend *memoryBackend
	clock   *clock.MockClock
	store   *statestore.Store
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.backend = &memoryBackend{}
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.store = s.open()
}

func (s *StoreTestSuite) open() *statestore.Store {
	policy, err := cooldown.NewPolicy(60 * time.Second)
	s.Require().NoError(err)
	store, err := statestore.Open(s.ctx, s.backend, statestore.Options{
		Clock:        s.clock,
		Random:       random.NewSeededSource(1),
		Points:       catalog.DefaultPointRange(),
		Cooldown:     policy,
		FlushTimeout: time.Second,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Require().NoError(err)
	return store
}

func (s *StoreTestSuite) commit(id participant.ID, item string) (shared.ClaimReceipt, error) {
	var receipt shared.ClaimReceipt
	err := s.store.WithinParticipant(s.ctx, id, func(ctx context.Context, tx shared.ClaimTx) error {
		var cerr error
		receipt, cerr = tx.CommitClaim(ctx, item, s.clock.Now())
		return cerr
	})
	return receipt, err
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) TestEmptyStart() {
	_, ok := s.store.GetParticipant(1)
	s.False(ok)
	s.Empty(s.store.Participants())
	s.Equal(0, s.store.CatalogSize())
	s.False(s.store.Dirty())
}

func (s *StoreTestSuite) TestCommitClaim() {
	s.Run("score tracks item values and cooldown is set", func() {
		r1, err := s.commit(1, "x.png")
		s.Require().NoError(err)
		s.Equal(r1.Points, r1.Score)
		s.Equal(s.clock.Now().Add(60*time.Second), r1.CooldownUntil)
		s.True(catalog.DefaultPointRange().Contains(r1.Points))

		s.clock.Add(61 * time.Second)
		r2, err := s.commit(1, "x.png")
		s.Require().NoError(err)
		s.Equal(r1.Points, r2.Points, "value is fixed after first assignment")
		s.Equal(2*r1.Points, r2.Score)

		p, ok := s.store.GetParticipant(1)
		s.Require().True(ok)
		s.Equal([]string{"x.png", "x.png"}, p.OwnedItems())
		s.Equal(r2.Score, p.Score())
		s.Equal(r2.CooldownUntil, *p.CooldownUntil())
	})

	s.Run("every commit is flushed", func() {
		before := s.backend.saveCount()
		_, err := s.commit(2, "y.png")
		s.Require().NoError(err)
		s.Equal(before+1, s.backend.saveCount())
		s.False(s.store.Dirty())
	})
}

func (s *StoreTestSuite) TestConcurrentModification() {
	inside := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- s.store.WithinParticipant(s.ctx, 7, func(_ context.Context, _ shared.ClaimTx) error {
			close(inside)
			<-release
			return nil
		})
	}()
	<-inside

	err := s.store.WithinParticipant(s.ctx, 7, func(_ context.Context, _ shared.ClaimTx) error {
		s.Fail("second critical section must not run")
		return nil
	})
	s.ErrorIs(err, errs.ErrConcurrentModification)
	s.True(errs.IsTransient(err))

	// other participants are unaffected
	s.NoError(s.store.WithinParticipant(s.ctx, 8, func(_ context.Context, _ shared.ClaimTx) error { return nil }))

	close(release)
	s.NoError(<-done)
	s.NoError(s.store.WithinParticipant(s.ctx, 7, func(_ context.Context, _ shared.ClaimTx) error { return nil }))
}

func (s *StoreTestSuite) TestPersistenceFailure() {
	s.backend.setSaveErr(errors.New("disk full"))

	receipt, err := s.commit(3, "z.png")
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrPersistenceFailure))
	s.False(errs.IsTransient(err))

	p, ok := s.store.GetParticipant(3)
	s.Require().True(ok, "in-memory effect stands")
	s.Equal(receipt.Score, p.Score())
	s.True(s.store.Dirty())

	s.backend.setSaveErr(nil)
	s.Require().NoError(s.store.SetDisplayName(s.ctx, 4, "Bo"))
	s.False(s.store.Dirty(), "next mutation retries durability")

	reopened := s.open()
	p, ok = reopened.GetParticipant(3)
	s.Require().True(ok)
	s.Equal(receipt.Score, p.Score())
}

func (s *StoreTestSuite) TestPersistRetriesFailedFlush() {
	s.backend.setSaveErr(errors.New("disk full"))
	_, err := s.commit(6, "q.png")
	s.Require().Error(err)

	err = s.store.Persist(s.ctx)
	s.True(errs.Is(err, errs.ErrPersistenceFailure))
	s.True(s.store.Dirty())

	s.backend.setSaveErr(nil)
	s.Require().NoError(s.store.Persist(s.ctx))
	s.False(s.store.Dirty())

	saves := s.backend.saveCount()
	s.Require().NoError(s.store.Persist(s.ctx))
	s.Equal(saves, s.backend.saveCount(), "clean store does not flush")
}

func (s *StoreTestSuite) TestSetDisplayName() {
	s.Require().NoError(s.store.SetDisplayName(s.ctx, 5, "Ann"))
	saves := s.backend.saveCount()

	s.Require().NoError(s.store.SetDisplayName(s.ctx, 5, "Ann"))
	s.Equal(saves, s.backend.saveCount(), "unchanged name does not flush")

	s.Require().NoError(s.store.SetDisplayName(s.ctx, 5, "Annie"))
	s.Equal(saves+1, s.backend.saveCount())

	p, ok := s.store.GetParticipant(5)
	s.Require().True(ok)
	s.Equal("Annie", p.DisplayName())
	s.False(p.HasClaimed())
}

func (s *StoreTestSuite) TestAssignIfAbsent() {
	added, err := s.store.AssignIfAbsent(s.ctx, "a.png", "b.png", "a.png")
	s.Require().NoError(err)
	s.Equal(2, added)

	a := s.store.PointValue("a.png")
	s.True(catalog.DefaultPointRange().Contains(a))
	s.Equal(0, s.store.PointValue("unknown.png"))

	saves := s.backend.saveCount()
	added, err = s.store.AssignIfAbsent(s.ctx, "a.png", "b.png")
	s.Require().NoError(err)
	s.Equal(0, added)
	s.Equal(saves, s.backend.saveCount())
	s.Equal(a, s.store.PointValue("a.png"))
}

func (s *StoreTestSuite) TestRestartKeepsState() {
	_, err := s.store.AssignIfAbsent(s.ctx, "pre.png")
	s.Require().NoError(err)
	_, err = s.commit(10, "x.png")
	s.Require().NoError(err)
	_, err = s.commit(11, "y.png")
	s.Require().NoError(err)
	s.Require().NoError(s.store.SetDisplayName(s.ctx, 10, "Ten"))

	reopened := s.open()

	s.Equal(s.store.CatalogSize(), reopened.CatalogSize())
	for _, item := range []string{"pre.png", "x.png", "y.png"} {
		s.Equal(s.store.PointValue(item), reopened.PointValue(item), item)
	}
	ids := make([]participant.ID, 0)
	for _, p := range reopened.Participants() {
		ids = append(ids, p.ID())
	}
	s.Equal([]participant.ID{10, 11}, ids, "first-seen order survives")

	p, ok := reopened.GetParticipant(10)
	s.Require().True(ok)
	s.Equal("Ten", p.DisplayName())
	s.NotNil(p.CooldownUntil())
	s.False(reopened.Dirty())
}

func TestOpenRepairsInconsistentSnapshot(t *testing.T) {
	backend := &memoryBackend{doc: snapshot.NewDocument()}
	backend.doc.ItemPoints["x.png"] = 40
	backend.doc.Participants["1"] = snapshot.ParticipantRecord{
		Items: []string{"x.png", "orphan.png"},
		Score: 999,
	}
	backend.doc.Participants["bogus"] = snapshot.ParticipantRecord{}

	store, err := statestore.Open(context.Background(), backend, statestore.Options{
		Random:   random.NewSequence(4), // orphan.png draws 1+4
		Cooldown: cooldown.Policy{Duration: time.Minute},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	p, ok := store.GetParticipant(1)
	require.True(t, ok)
	assert.Equal(t, 45, p.Score())
	assert.Equal(t, 5, store.PointValue("orphan.png"))
	assert.Len(t, store.Participants(), 1)
	assert.True(t, store.Dirty())

	require.NoError(t, store.Close(context.Background()))
	assert.False(t, store.Dirty())
}

func TestOpenPropagatesLoadFailure(t *testing.T) {
	backend := &failingBackend{err: errors.New("permission denied")}
	_, err := statestore.Open(context.Background(), backend, statestore.Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}

type failingBackend struct{ err error }

func (b *failingBackend) Load(context.Context) (*snapshot.Document, error) {
	return nil, infra.WrapRepoErr(nil, infra.KindStorageFailure, "load", b.err)
}
func (b *failingBackend) Save(context.Context, *snapshot.Document) error { return b.err }

func TestScoreInvariantUnderConcurrentClaims(t *testing.T) {
	ctx := context.Background()
	backend := &memoryBackend{}
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	store, err := statestore.Open(ctx, backend, statestore.Options{
		Clock:    clk,
		Random:   random.NewSeededSource(99),
		Cooldown: cooldown.Policy{Duration: time.Minute},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	items := []string{"a", "b", "c", "d"}
	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			id := participant.ID(w%4 + 1)
			for i := range 25 {
				_ = store.WithinParticipant(ctx, id, func(ctx context.Context, tx shared.ClaimTx) error {
					_, cerr := tx.CommitClaim(ctx, items[(w+i)%len(items)], clk.Now())
					return cerr
				})
			}
		}(w)
	}
	wg.Wait()

	for _, p := range store.Participants() {
		sum := 0
		for _, item := range p.OwnedItems() {
			sum += store.PointValue(item)
		}
		assert.Equal(t, sum, p.Score(), "participant %d", p.ID())
	}
}
