package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
)

// UnverifiedUserPurger deletes accounts that never confirmed their e-mail.
type UnverifiedUserPurger interface {
	DeleteUnverifiedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// PurgeUnverifiedUsersTask removes unverified accounts older than OlderThan.
// Their verification tokens go with them.
type PurgeUnverifiedUsersTask struct {
	OlderThan time.Duration `json:"older_than"`
}

// Config returns the queue configuration for purge tasks. A failed purge is not
// retried; the next scheduled run covers it.
func (t PurgeUnverifiedUsersTask) Config() backlite.QueueConfig {
	cfg := currentQueueSettings()
	return backlite.QueueConfig{
		Name:        "purge_unverified_users",
		MaxAttempts: 1,
		Backoff:     cfg.RetryDelay,
		Timeout:     cfg.TaskTimeout,
		Retention: &backlite.Retention{
			Duration:   cfg.RetentionDuration,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// PurgeUnverifiedUsersProcessor creates a processor function for PurgeUnverifiedUsersTask.
func PurgeUnverifiedUsersProcessor(purger UnverifiedUserPurger) backlite.QueueProcessor[PurgeUnverifiedUsersTask] {
	return func(ctx context.Context, task PurgeUnverifiedUsersTask) error {
		if purger == nil {
			return fmt.Errorf("unverified user purger not configured")
		}
		if task.OlderThan <= 0 {
			return fmt.Errorf("purge unverified users: non-positive age %s", task.OlderThan)
		}

		deleted, err := purger.DeleteUnverifiedBefore(ctx, time.Now().Add(-task.OlderThan))
		if err != nil {
			return fmt.Errorf("purge unverified users: %w", err)
		}

		log.Info().Int64("deleted", deleted).Dur("older_than", task.OlderThan).Msg("Purged unverified users")
		return nil
	}
}

// NewPurgeUnverifiedUsersQueue creates a backlite queue for purge tasks.
func NewPurgeUnverifiedUsersQueue(purger UnverifiedUserPurger) backlite.Queue {
	return backlite.NewQueue(PurgeUnverifiedUsersProcessor(purger))
}
