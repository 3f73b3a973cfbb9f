package forms

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"workhub/models"
	"workhub/services/notification"
	"workhub/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Complete finishes a submission: the payload is logged and the form's
// success notification is sent. Nothing is written to the catalog.
func Complete(ctx context.Context, sub Submission, notifier notification.Notifier, logger *zap.Logger) {
	logger.Info("Form submission processed",
		zap.String("receiptId", sub.Receipt.ID),
		zap.String("kind", sub.Receipt.Kind),
		zap.Any("payload", sub.Form))
	notification.Send(ctx, notifier, sub.Form.Success(), logger)
}

// InlineProcessor completes submissions in-process after Delay.
type InlineProcessor struct {
	ctx      context.Context
	Delay    time.Duration
	Notifier notification.Notifier
	Logger   *zap.Logger
}

// NewInlineProcessor ties background processing to ctx; cancelling it drops
// submissions that are still waiting and reports them as failed.
func NewInlineProcessor(ctx context.Context, delay time.Duration, notifier notification.Notifier, logger *zap.Logger) *InlineProcessor {
	return &InlineProcessor{ctx: ctx, Delay: delay, Notifier: notifier, Logger: logger}
}

func (p *InlineProcessor) Enqueue(_ context.Context, sub Submission) error {
	go func() {
		if err := p.Process(p.ctx, sub); err != nil {
			p.Logger.Warn("Form submission dropped",
				zap.String("receiptId", sub.Receipt.ID), zap.Error(err))
			notification.Send(context.WithoutCancel(p.ctx), p.Notifier, sub.Form.Failure(), p.Logger)
		}
	}()
	return nil
}

// Process waits for Delay, then completes sub. It returns ctx.Err() if ctx
// ends first.
func (p *InlineProcessor) Process(ctx context.Context, sub Submission) error {
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	Complete(ctx, sub, p.Notifier, p.Logger)
	return nil
}

// TaskEnqueuer is the subset of *asynq.Client used to queue submissions.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueProcessor schedules submissions on the asynq queue; the worker
// completes them.
type QueueProcessor struct {
	Client TaskEnqueuer
	Delay  time.Duration
	Logger *zap.Logger
}

func (p *QueueProcessor) Enqueue(ctx context.Context, sub Submission) error {
	form, err := json.Marshal(sub.Form)
	if err != nil {
		return fmt.Errorf("failed to encode %s form: %w", sub.Receipt.Kind, err)
	}
	task, opts, err := tasks.NewSubmissionTask(tasks.SubmissionPayload{
		ReceiptID:  sub.Receipt.ID,
		Kind:       sub.Receipt.Kind,
		AcceptedAt: sub.Receipt.AcceptedAt,
		Form:       form,
	}, p.Delay)
	if err != nil {
		return err
	}
	info, err := p.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s submission: %w", sub.Receipt.Kind, err)
	}
	p.Logger.Debug("Form submission queued",
		zap.String("receiptId", sub.Receipt.ID), zap.String("taskId", info.ID))
	return nil
}

// FailureFor returns the failure notification of a form kind, falling back to
// a generic one for unknown kinds.
func FailureFor(kind string) notification.Message {
	switch kind {
	case KindMember:
		return MemberForm{}.Failure()
	case KindLead:
		return LeadForm{}.Failure()
	case KindBooking:
		return BookingForm{}.Failure()
	}
	return notification.Message{
		Title:       "Error",
		Description: "Failed to process submission. Please try again.",
		Variant:     "destructive",
	}
}

// Decode rebuilds a queued submission.
func Decode(p tasks.SubmissionPayload) (Submission, error) {
	var form Form
	var err error
	switch p.Kind {
	case KindMember:
		var f MemberForm
		err = json.Unmarshal(p.Form, &f)
		form = f
	case KindLead:
		var f LeadForm
		err = json.Unmarshal(p.Form, &f)
		form = f
	case KindBooking:
		var f BookingForm
		err = json.Unmarshal(p.Form, &f)
		form = f
	default:
		return Submission{}, fmt.Errorf("unknown form kind %q", p.Kind)
	}
	if err != nil {
		return Submission{}, fmt.Errorf("failed to decode %s form: %w", p.Kind, err)
	}
	return Submission{
		Receipt: models.Receipt{ID: p.ReceiptID, Kind: p.Kind, AcceptedAt: p.AcceptedAt},
		Form:    form,
	}, nil
}
