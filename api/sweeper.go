/*
sweeper.go - Stale open-session sweeper

PURPOSE:
  People forget to clock out. The sweeper periodically closes sessions
  that have been open longer than a configured maximum, flagging the
  derived fields the same way a normal clock-out would. Admins can
  still PATCH the session afterwards to fix the real check-out time.

DESIGN:
  - Runs a background goroutine with a configurable sweep interval
  - A session is stale when now - check_in > MaxOpen
  - Stale sessions are closed at check_in + MaxOpen, not at sweep
    time, so a session found hours later is not inflated

USAGE:
  sweeper := NewSweeper(handler, logger)
  sweeper.Start()
  // ... later
  sweeper.Stop()

SEE ALSO:
  - handlers.go: ClockOut (the manual path)
*/
package api

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sweeper closes forgotten open sessions.
type Sweeper struct {
	Handler  *Handler
	Interval time.Duration
	MaxOpen  time.Duration
	Enabled  bool

	log    *zap.Logger
	ticker *time.Ticker
	stop   chan struct{}
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewSweeper creates a sweeper with 30m interval and 18h max open.
func NewSweeper(h *Handler, logger *zap.Logger) *Sweeper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sweeper{
		Handler:  h,
		Interval: 30 * time.Minute,
		MaxOpen:  18 * time.Hour,
		Enabled:  true,
		log:      logger,
		stop:     make(chan struct{}),
	}
}

// Start begins the background sweep.
func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Enabled {
		s.log.Info("sweeper disabled, not starting")
		return
	}

	s.ticker = time.NewTicker(s.Interval)
	s.wg.Add(1)
	go s.run()

	s.log.Info("sweeper started",
		zap.Duration("interval", s.Interval),
		zap.Duration("max_open", s.MaxOpen))
}

// Stop stops the sweeper and waits for an in-flight sweep.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != nil {
		s.ticker.Stop()
		close(s.stop)
		s.wg.Wait()
		s.log.Info("sweeper stopped")
	}
}

func (s *Sweeper) run() {
	defer s.wg.Done()
	for {
		select {
		case <-s.ticker.C:
			s.SweepOnce(context.Background())
		case <-s.stop:
			return
		}
	}
}

// SweepOnce closes every stale session. Exposed for tests and for a
// sweep on startup.
func (s *Sweeper) SweepOnce(ctx context.Context) int {
	now := s.Handler.clock.Now()

	open, err := s.Handler.store.OpenSessions(ctx)
	if err != nil {
		s.log.Error("sweep: list open sessions", zap.Error(err))
		return 0
	}

	closed := 0
	for _, ses := range open {
		if now.Sub(ses.CheckIn) <= s.MaxOpen {
			continue
		}

		ses.CheckOut = ses.CheckIn.Add(s.MaxOpen)
		ses.Completed = true
		if err := s.Handler.finalizeSession(&ses); err != nil {
			s.log.Error("sweep: finalize session",
				zap.String("session", string(ses.ID)), zap.Error(err))
			continue
		}
		if err := s.Handler.store.UpdateSession(ctx, ses); err != nil {
			s.log.Error("sweep: update session",
				zap.String("session", string(ses.ID)), zap.Error(err))
			continue
		}
		closed++
		s.log.Warn("closed stale session",
			zap.String("session", string(ses.ID)),
			zap.String("employee", string(ses.EmployeeID)),
			zap.Time("check_in", ses.CheckIn))
	}
	return closed
}
