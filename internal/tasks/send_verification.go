package tasks

import (
	"context"
	"fmt"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
)

// VerificationSender delivers verification mail synchronously.
type VerificationSender interface {
	SendVerificationEmail(ctx context.Context, to, token string) error
}

// SendVerificationEmailTask delivers the confirmation link of a new account.
type SendVerificationEmailTask struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// Config returns the queue configuration for verification mail tasks.
func (t SendVerificationEmailTask) Config() backlite.QueueConfig {
	cfg := currentQueueSettings()
	return backlite.QueueConfig{
		Name:        "send_verification_email",
		MaxAttempts: cfg.MaxRetries,
		Backoff:     cfg.RetryDelay,
		Timeout:     cfg.TaskTimeout,
		Retention: &backlite.Retention{
			Duration:   cfg.RetentionDuration,
			OnlyFailed: true,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// SendVerificationEmailProcessor creates a processor function for SendVerificationEmailTask.
func SendVerificationEmailProcessor(sender VerificationSender) backlite.QueueProcessor[SendVerificationEmailTask] {
	return func(ctx context.Context, task SendVerificationEmailTask) error {
		if sender == nil {
			return fmt.Errorf("verification sender not configured")
		}
		if err := sender.SendVerificationEmail(ctx, task.Email, task.Token); err != nil {
			return fmt.Errorf("send verification email to %s: %w", task.Email, err)
		}
		return nil
	}
}

// NewSendVerificationEmailQueue creates a backlite queue for verification mail.
func NewSendVerificationEmailQueue(sender VerificationSender) backlite.Queue {
	return backlite.NewQueue(SendVerificationEmailProcessor(sender))
}

// Enqueuer adds tasks to the queue.
type Enqueuer interface {
	Add(tasks ...backlite.Task) *backlite.TaskAddOp
}

// QueuedMailer hands verification mail to the task queue instead of sending it
// inline, so registration never waits on SMTP.
type QueuedMailer struct {
	queue Enqueuer
}

func NewQueuedMailer(queue Enqueuer) *QueuedMailer {
	return &QueuedMailer{queue: queue}
}

func (m *QueuedMailer) SendVerificationEmail(_ context.Context, to, token string) error {
	ids, err := m.queue.Add(SendVerificationEmailTask{Email: to, Token: token}).Save()
	if err != nil {
		return fmt.Errorf("enqueue verification email: %w", err)
	}
	log.Debug().Strs("task_ids", ids).Str("to", to).Msg("Verification email queued")
	return nil
}
