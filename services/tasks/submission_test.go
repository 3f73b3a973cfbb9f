package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionTaskRoundTrip(t *testing.T) {
	in := SubmissionPayload{
		ReceiptID:  "4b7f0b0e-8d34-4a55-9b43-2f2b6a8f3e11",
		Kind:       "lead",
		AcceptedAt: time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
		Form:       json.RawMessage(`{"name":"Alex"}`),
	}
	task, opts, err := NewSubmissionTask(in, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, TypeFormSubmit, task.Type())
	assert.Len(t, opts, 3)

	out, err := ParseSubmission(task)
	require.NoError(t, err)
	assert.Equal(t, in.ReceiptID, out.ReceiptID)
	assert.Equal(t, in.Kind, out.Kind)
	assert.True(t, in.AcceptedAt.Equal(out.AcceptedAt))
	assert.JSONEq(t, `{"name":"Alex"}`, string(out.Form))
}

func TestParseSubmissionRejectsGarbage(t *testing.T) {
	_, err := ParseSubmission(asynq.NewTask(TypeFormSubmit, []byte("not json")))
	assert.Error(t, err)
}
