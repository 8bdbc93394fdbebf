package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/xavierca1/growthx-admin/internal/usecase"
)

// FollowupScheduler owns the periodic cadence job: one run shortly
// after boot, then every interval. It is an explicit handle held by
// main, not a package-level flag, and the job body itself carries a
// re-entrancy lock so a slow cycle is skipped rather than stacked.
type FollowupScheduler struct {
	Dispatch *usecase.DispatchFollowupsUseCase
	Interval time.Duration
	Channel  usecase.DispatchChannel

	// StartupDelay lets the rest of the process finish wiring before
	// the first cycle fires.
	StartupDelay time.Duration

	running sync.Mutex // guards the job body, not the scheduler
	stop    chan struct{}
	stopped sync.Once
}

func New(dispatch *usecase.DispatchFollowupsUseCase, interval time.Duration, channel usecase.DispatchChannel) *FollowupScheduler {
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	return &FollowupScheduler{
		Dispatch:     dispatch,
		Interval:     interval,
		Channel:      channel,
		StartupDelay: 5 * time.Second,
		stop:         make(chan struct{}),
	}
}

// Start blocks until Stop is called; run it on its own goroutine.
func (s *FollowupScheduler) Start(ctx context.Context) {
	log.Printf("⏰ [Scheduler] Started: channel=%s interval=%s", s.Channel, s.Interval)

	startup := time.NewTimer(s.StartupDelay)
	defer startup.Stop()

	select {
	case <-startup.C:
		s.runOnce(ctx)
	case <-s.stop:
		return
	case <-ctx.Done():
		return
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-s.stop:
			log.Println("⏰ [Scheduler] Stopped")
			return
		case <-ctx.Done():
			log.Println("⏰ [Scheduler] Context cancelled")
			return
		}
	}
}

func (s *FollowupScheduler) Stop() {
	s.stopped.Do(func() { close(s.stop) })
}

// runOnce executes one dispatch cycle. TryLock keeps a still-running
// cycle from overlapping with the next tick.
func (s *FollowupScheduler) runOnce(ctx context.Context) {
	if !s.running.TryLock() {
		log.Println("⚠️ [Scheduler] Previous cycle still running, skipping this tick")
		return
	}
	defer s.running.Unlock()

	report, err := s.Dispatch.Execute(ctx, time.Now(), s.Channel)
	if err != nil {
		if usecase.IsDomainError(err) {
			// Channel disabled: expected while no addresses exist.
			log.Printf("📭 [Scheduler] Cycle skipped: %v", err)
		} else {
			log.Printf("❌ [Scheduler] Cycle failed: %v", err)
		}
		return
	}

	log.Printf("⏰ [Scheduler] Cycle report: %d sent, %d failed, %d total", report.Sent, report.Failed, report.Total)
}
