package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/forgo/learnledger/api/internal/jobs"
	"github.com/forgo/learnledger/api/internal/metrics"
	"github.com/forgo/learnledger/api/internal/model"
)

// Timer runs a tick function until stopped. Stop must not return while a
// tick is in flight.
type Timer interface {
	Start()
	Stop()
}

// TimerFactory creates a stopped Timer calling fn every interval
type TimerFactory func(interval time.Duration, fn func(ctx context.Context)) Timer

func newJobTimer(interval time.Duration, fn func(ctx context.Context)) Timer {
	return jobs.NewTicker(interval, fn)
}

// ReadingService tracks the single open paper viewer and its reading clock
type ReadingService struct {
	mu       sync.Mutex
	papers   PaperCatalog
	times    ReadingTimeRepository
	stake    StakeReader
	interval time.Duration
	newTimer TimerFactory
	now      func() time.Time
	logger   *slog.Logger
	current  *readingSession
}

// ReadingServiceConfig holds configuration for the reading service
type ReadingServiceConfig struct {
	Papers       PaperCatalog
	ReadingTimes ReadingTimeRepository
	Stake        StakeReader
	TickInterval time.Duration // Defaults to one second
	TimerFactory TimerFactory  // Defaults to jobs.NewTicker
	Now          func() time.Time
	Logger       *slog.Logger
}

// NewReadingService creates a new reading service
func NewReadingService(cfg ReadingServiceConfig) *ReadingService {
	s := &ReadingService{
		papers:   cfg.Papers,
		times:    cfg.ReadingTimes,
		stake:    cfg.Stake,
		interval: cfg.TickInterval,
		newTimer: cfg.TimerFactory,
		now:      cfg.Now,
		logger:   cfg.Logger,
	}
	if s.interval <= 0 {
		s.interval = jobs.DefaultInterval
	}
	if s.newTimer == nil {
		s.newTimer = newJobTimer
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// readingSession is one open viewer. elapsed is written by the tick goroutine.
type readingSession struct {
	id       string
	paper    model.Paper
	openedAt time.Time
	timer    Timer

	mu      sync.Mutex
	elapsed int
}

func (rs *readingSession) snapshot() *model.ReadingSession {
	rs.mu.Lock()
	elapsed := rs.elapsed
	rs.mu.Unlock()

	return &model.ReadingSession{
		ID:             rs.id,
		PaperID:        rs.paper.ID,
		Title:          rs.paper.Title,
		Link:           rs.paper.Link,
		ElapsedSeconds: elapsed,
		ReadingTime:    model.FormatReadingTime(elapsed),
		OpenedAt:       rs.openedAt,
	}
}

// Open opens the viewer for a paper and starts its reading clock from the
// persisted total. Reopening the open paper returns the running session;
// opening another paper closes the current one first.
func (s *ReadingService) Open(ctx context.Context, paperID string) (*model.ReadingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current.paper.ID == paperID {
		return s.current.snapshot(), nil
	}

	paper, ok := s.papers.Get(paperID)
	if !ok {
		return nil, ErrPaperNotFound
	}
	if staked := s.stake.Staked(); staked < paper.RequiredStake {
		return nil, &LockedError{PaperID: paperID, RequiredStake: paper.RequiredStake, Staked: staked}
	}

	seconds, err := s.times.Get(ctx, paperID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reading time: %w", err)
	}

	if s.current != nil {
		s.closeLocked(ctx)
	}

	rs := &readingSession{
		id:       uuid.NewString(),
		paper:    paper,
		openedAt: s.now(),
		elapsed:  seconds,
	}
	rs.timer = s.newTimer(s.interval, func(tickCtx context.Context) {
		s.tick(tickCtx, rs)
	})
	s.current = rs
	rs.timer.Start()

	metrics.ReadingSessions.Inc()
	s.logger.InfoContext(ctx, "reading session opened",
		slog.String("session_id", rs.id),
		slog.String("paper_id", paperID),
		slog.Int("elapsed_seconds", seconds),
	)
	return rs.snapshot(), nil
}

// tick advances the clock of one session and persists the new total
func (s *ReadingService) tick(ctx context.Context, rs *readingSession) {
	rs.mu.Lock()
	rs.elapsed++
	elapsed := rs.elapsed
	rs.mu.Unlock()

	metrics.ReadingSeconds.Inc()
	if err := s.times.Put(ctx, rs.paper.ID, elapsed); err != nil {
		s.logger.Warn("failed to persist reading time",
			slog.String("paper_id", rs.paper.ID),
			slog.Int("elapsed_seconds", elapsed),
			slog.String("error", err.Error()),
		)
	}
}

// Close closes the viewer for a paper. When Close returns the reading clock
// has stopped and the last persisted total is final.
func (s *ReadingService) Close(ctx context.Context, paperID string) (*model.ReadingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.paper.ID != paperID {
		return nil, ErrNoOpenSession
	}
	return s.closeLocked(ctx), nil
}

// closeLocked stops the current session. Ticks never take s.mu, so stopping
// under the lock cannot deadlock.
func (s *ReadingService) closeLocked(ctx context.Context) *model.ReadingSession {
	rs := s.current
	rs.timer.Stop()
	s.current = nil

	snap := rs.snapshot()
	s.logger.InfoContext(ctx, "reading session closed",
		slog.String("session_id", snap.ID),
		slog.String("paper_id", snap.PaperID),
		slog.Int("elapsed_seconds", snap.ElapsedSeconds),
	)
	return snap
}

// Current returns the open session
func (s *ReadingService) Current() (*model.ReadingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoOpenSession
	}
	return s.current.snapshot(), nil
}

// Shutdown closes any open session
func (s *ReadingService) Shutdown(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.closeLocked(ctx)
	}
}
