package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/myapp/bookstore/internal/config"
	"github.com/myapp/bookstore/internal/tasks"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronSchedule checks a five-field cron expression.
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// UnverifiedCleanupScheduler periodically purges accounts that never confirmed
// their e-mail. With a task queue the purge is enqueued; without one it runs inline.
type UnverifiedCleanupScheduler struct {
	queue  tasks.Enqueuer
	purger tasks.UnverifiedUserPurger
	config config.Cleanup

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewUnverifiedCleanupScheduler creates a new scheduler instance. queue may be nil.
func NewUnverifiedCleanupScheduler(queue tasks.Enqueuer, purger tasks.UnverifiedUserPurger, cfg config.Cleanup) *UnverifiedCleanupScheduler {
	return &UnverifiedCleanupScheduler{
		queue:  queue,
		purger: purger,
		config: cfg,
		cron:   cron.New(cron.WithParser(cronParser)),
	}
}

// Start begins the scheduler if cleanup is enabled
func (s *UnverifiedCleanupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.config.Enabled {
		log.Info().Msg("Unverified cleanup scheduler: disabled")
		return nil
	}

	if s.config.MaxAge <= 0 {
		return fmt.Errorf("invalid unverified account max age %s", s.config.MaxAge)
	}

	if err := ValidateCronSchedule(s.config.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.config.Schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		s.runPurge(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule cleanup job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Info().
		Str("schedule", s.config.Schedule).
		Dur("max_age", s.config.MaxAge).
		Time("next_run", s.cron.Entry(entryID).Next).
		Msg("Unverified cleanup scheduler: started")

	// Monitor for context cancellation
	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler
func (s *UnverifiedCleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	// Stop accepting new jobs and wait for running jobs to complete
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	log.Info().Msg("Unverified cleanup scheduler: stopped")
}

// IsRunning returns whether the scheduler is active
func (s *UnverifiedCleanupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next purge will occur
func (s *UnverifiedCleanupScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	t := s.cron.Entry(s.entryID).Next
	return &t
}

// RunNow triggers an immediate purge
func (s *UnverifiedCleanupScheduler) RunNow(ctx context.Context) error {
	return s.runPurge(ctx)
}

func (s *UnverifiedCleanupScheduler) runPurge(ctx context.Context) error {
	task := tasks.PurgeUnverifiedUsersTask{OlderThan: s.config.MaxAge}

	if s.queue != nil {
		if _, err := s.queue.Add(task).Save(); err != nil {
			log.Error().Err(err).Msg("Unverified cleanup: failed to enqueue purge")
			return err
		}
		return nil
	}

	if err := tasks.PurgeUnverifiedUsersProcessor(s.purger)(ctx, task); err != nil {
		log.Error().Err(err).Msg("Unverified cleanup: purge failed")
		return err
	}
	return nil
}
