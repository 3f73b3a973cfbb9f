package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const TypeFormSubmit = "form:submit"

// SubmissionPayload is a queued form submission.
type SubmissionPayload struct {
	ReceiptID  string          `json:"receiptId"`
	Kind       string          `json:"kind"`
	AcceptedAt time.Time       `json:"acceptedAt"`
	Form       json.RawMessage `json:"form"`
}

// NewSubmissionTask builds a task that becomes due after delay. Submissions
// are never retried.
func NewSubmissionTask(payload SubmissionPayload, delay time.Duration) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode submission payload: %w", err)
	}
	task := asynq.NewTask(TypeFormSubmit, b)
	opts := []asynq.Option{
		asynq.ProcessIn(delay),
		asynq.MaxRetry(0),
		asynq.TaskID(payload.ReceiptID),
	}
	return task, opts, nil
}

// ParseSubmission decodes a task produced by NewSubmissionTask.
func ParseSubmission(task *asynq.Task) (SubmissionPayload, error) {
	var p SubmissionPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid submission payload: %w", err)
	}
	return p, nil
}
