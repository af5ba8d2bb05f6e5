package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"card-drop/internal/domain/participant"
	"card-drop/internal/pkg/clock"
	"card-drop/internal/usecase/shared"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// Firer is called once per fired timer, outside any scheduler lock.
type Firer interface {
	Fire(ctx context.Context, id participant.ID)
}

type FirerFunc func(ctx context.Context, id participant.ID)

func (f FirerFunc) Fire(ctx context.Context, id participant.ID) { f(ctx, id) }

type entry struct {
	jobID  uuid.UUID // uuid.Nil for timers that fired immediately
	fireAt time.Time
	gen    uint64
}

// Scheduler keeps at most one one-shot notification timer per participant.
// Timers are identified by participant id; arming again replaces the
// previous timer.
type Scheduler struct {
	cron   gocron.Scheduler
	firer  Firer
	clock  clock.Clock
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	entries map[participant.ID]*entry
	gen     uint64
}

func New(firer Firer, clk clock.Clock, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cron, err := gocron.NewScheduler(
		gocron.WithLogger(logger),
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:    cron,
		firer:   firer,
		clock:   clk,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		entries: make(map[participant.ID]*entry),
	}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("notification scheduler started")
}

func (s *Scheduler) Shutdown() error {
	s.cancel()
	if err := s.cron.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down scheduler: %w", err)
	}
	s.logger.Info("notification scheduler stopped")
	return nil
}

// Arm replaces any timer for id with one that fires at fireAt. A deadline
// that is already due fires right away instead of being scheduled.
func (s *Scheduler) Arm(id participant.ID, fireAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(id)
	s.gen++
	e := &entry{fireAt: fireAt, gen: s.gen}
	s.entries[id] = e

	if !fireAt.After(s.clock.Now()) {
		s.fireNowLocked(id, e)
		return
	}

	job, err := s.cron.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(fireAt)),
		gocron.NewTask(s.run, id, e.gen),
		gocron.WithName(jobName(id)),
		gocron.WithTags("notification"),
	)
	if errors.Is(err, gocron.ErrOneTimeJobStartDateTimePast) {
		s.fireNowLocked(id, e)
		return
	}
	if err != nil {
		// the participant can still claim once the cooldown ends; only the reminder is lost
		delete(s.entries, id)
		s.logger.Error("failed to arm notification",
			"participant_id", int64(id),
			"fire_at", fireAt,
			"error", err)
		return
	}
	e.jobID = job.ID()
	s.logger.Debug("notification armed",
		"participant_id", int64(id),
		"fire_at", fireAt)
}

// Cancel is a no-op when nothing is armed for id.
func (s *Scheduler) Cancel(id participant.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

// Pending returns the armed deadlines keyed by participant.
func (s *Scheduler) Pending() map[participant.ID]time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[participant.ID]time.Time, len(s.entries))
	for id, e := range s.entries {
		out[id] = e.fireAt
	}
	return out
}

// Every runs fn on a fixed interval; overlapping runs are skipped.
func (s *Scheduler) Every(interval time.Duration, name string, fn func(ctx context.Context)) error {
	_, err := s.cron.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { fn(s.ctx) }),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", name, err)
	}
	return nil
}

func (s *Scheduler) removeLocked(id participant.ID) {
	e, ok := s.entries[id]
	if !ok {
		return
	}
	delete(s.entries, id)
	if e.jobID == uuid.Nil {
		return
	}
	if err := s.cron.RemoveJob(e.jobID); err != nil && !errors.Is(err, gocron.ErrJobNotFound) {
		s.logger.Warn("failed to remove notification job",
			"participant_id", int64(id),
			"error", err)
	}
}

func (s *Scheduler) fireNowLocked(id participant.ID, e *entry) {
	s.logger.Debug("notification already due, firing now",
		"participant_id", int64(id),
		"fire_at", e.fireAt)
	go s.run(id, e.gen)
}

// run fires only if the timer is still the current one for id.
func (s *Scheduler) run(id participant.ID, gen uint64) {
	s.mu.Lock()
	e, ok := s.entries[id]
	if !ok || e.gen != gen {
		s.mu.Unlock()
		return
	}
	delete(s.entries, id)
	firer := s.firer
	s.mu.Unlock()

	if e.jobID != uuid.Nil {
		// one-time jobs linger in gocron after running
		go s.forget(e.jobID)
	}
	if firer == nil {
		s.logger.Warn("notification fired with no firer", "participant_id", int64(id))
		return
	}
	firer.Fire(s.ctx, id)
}

func (s *Scheduler) forget(jobID uuid.UUID) {
	if err := s.cron.RemoveJob(jobID); err != nil && !errors.Is(err, gocron.ErrJobNotFound) {
		s.logger.Debug("failed to remove fired job", "job_id", jobID.String(), "error", err)
	}
}

func jobName(id participant.ID) string {
	return "notify_" + id.String()
}

var _ shared.NotificationScheduler = (*Scheduler)(nil)
