package scheduler

import (
	"context"
	"sync"
	"time"

	paymentUsecases "sepapay/internal/application/payment/usecases"
	"sepapay/internal/shared/logger"
)

// EventScheduler periodically polls the gateway event log to reconcile
// pending charges against their settled or failed outcome.
type EventScheduler struct {
	pollEventsUC *paymentUsecases.PollChargeEventsUseCase
	logger       logger.Interface
	stopChan     chan struct{}
	stopOnce     sync.Once      // Ensures Stop() is only called once
	wg           sync.WaitGroup // Tracks running goroutines for graceful shutdown
	interval     time.Duration
}

func NewEventScheduler(
	pollEventsUC *paymentUsecases.PollChargeEventsUseCase,
	interval time.Duration,
	logger logger.Interface,
) *EventScheduler {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &EventScheduler{
		pollEventsUC: pollEventsUC,
		logger:       logger,
		stopChan:     make(chan struct{}),
		interval:     interval,
	}
}

// Start starts the scheduler and returns immediately.
func (s *EventScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting event scheduler", "interval", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runPollLoop(ctx)
	}()
}

// Stop stops the scheduler gracefully and waits for all goroutines to complete.
// Safe to call multiple times - only the first call will actually stop the scheduler.
func (s *EventScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping event scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("event scheduler stopped")
	})
}

func (s *EventScheduler) runPollLoop(ctx context.Context) {
	// Run immediately on startup to catch events from the downtime window
	s.pollOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("event scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			s.logger.Infow("event scheduler stopped")
			return
		case <-ticker.C:
			s.pollOnce(ctx)
		}
	}
}

func (s *EventScheduler) pollOnce(ctx context.Context) {
	s.logger.Debugw("charge event poll started")

	startTime := time.Now()

	if err := s.pollEventsUC.Execute(ctx); err != nil {
		s.logger.Errorw("charge event poll failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	s.logger.Debugw("charge event poll completed",
		"duration", time.Since(startTime),
	)
}
