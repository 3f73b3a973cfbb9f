package cron

import (
	"context"
	"fmt"
	"time"

	"workhub/services/forms"
	"workhub/services/notification"
	"workhub/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// SubmissionWorker completes queued form submissions.
type SubmissionWorker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

// NewSubmissionWorker builds the asynq server for form submissions.
func NewSubmissionWorker(redisOpts asynq.RedisClientOpt, notifier notification.Notifier, logger *zap.Logger) *SubmissionWorker {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeFormSubmit, HandleSubmissionTask(notifier, logger))
	return &SubmissionWorker{srv: srv, mux: mux}
}

// Start runs the worker in the background, retrying startup with backoff.
func (w *SubmissionWorker) Start(logger *zap.Logger) {
	go func() {
		logger.Info("Starting submission worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := w.srv.Start(w.mux)
			if err == nil {
				return
			}
			logger.Warn("Submission worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Submission worker gave up; queued forms will wait in redis")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

// Shutdown stops pulling tasks and waits for running handlers.
func (w *SubmissionWorker) Shutdown() {
	w.srv.Shutdown()
}

// HandleSubmissionTask completes one queued submission. Failures are never
// retried.
func HandleSubmissionTask(notifier notification.Notifier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		payload, err := tasks.ParseSubmission(task)
		if err != nil {
			logger.Error("Dropping submission task", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		sub, err := forms.Decode(payload)
		if err != nil {
			logger.Error("Dropping submission", zap.String("receiptId", payload.ReceiptID), zap.Error(err))
			notification.Send(ctx, notifier, forms.FailureFor(payload.Kind), logger)
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		// The server is shutting down or the task deadline passed.
		if err := ctx.Err(); err != nil {
			logger.Warn("Submission abandoned", zap.String("receiptId", sub.Receipt.ID), zap.Error(err))
			notification.Send(context.WithoutCancel(ctx), notifier, sub.Form.Failure(), logger)
			return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
		}

		forms.Complete(ctx, sub, notifier, logger)
		return nil
	}
}
