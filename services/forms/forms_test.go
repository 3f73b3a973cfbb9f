package forms

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"workhub/models"
	"workhub/services/notification"
	"workhub/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validMember() MemberForm {
	return MemberForm{
		FirstName: "Priya",
		LastName:  "Nair",
		Email:     "priya@studio.in",
		Phone:     "+91 98765 43210",
		Company:   "Nair Design Studio",
		Plan:      "Premium",
		StartDate: "2026-11-01",
	}
}

func validBooking() BookingForm {
	return BookingForm{
		Title:     "Design Review",
		Space:     "Meeting Room A",
		Date:      "2026-10-20",
		StartTime: "10:00",
		EndTime:   "11:30",
		Attendees: 4,
	}
}

func TestValidateMemberForm(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.Validate(validMember()))

	cases := []struct {
		name   string
		mutate func(*MemberForm)
		field  string
		msg    string
	}{
		{"missing first name", func(f *MemberForm) { f.FirstName = "" }, "firstName", "First name is required"},
		{"bad email", func(f *MemberForm) { f.Email = "priya-at-studio" }, "email", "Valid email is required"},
		{"short phone", func(f *MemberForm) { f.Phone = "12345" }, "phone", "Valid phone number is required"},
		{"missing plan", func(f *MemberForm) { f.Plan = "" }, "plan", "Membership plan is required"},
		{"bad start date", func(f *MemberForm) { f.StartDate = "01/11/2026" }, "startDate", "Start date is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validMember()
			tc.mutate(&form)

			err := v.Validate(form)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, map[string]string{tc.field: tc.msg}, verr.Fields)
		})
	}
}

func TestValidateEmptyMemberFormReportsEveryField(t *testing.T) {
	err := NewValidator().Validate(MemberForm{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 7)
	assert.Equal(t, "First name is required", verr.Fields["firstName"])
	assert.Contains(t, verr.Error(), "firstName")
}

func TestValidateLeadForm(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.Validate(LeadForm{Name: "Alex Rodriguez", Email: "alex@startup.co", Phone: "+1 (555) 123-4567", Source: "Website"}))

	err := v.Validate(LeadForm{Name: "Alex", Email: "alex@startup.co", Phone: "555", Source: ""})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"phone":  "Valid phone number is required",
		"source": "Lead source is required",
	}, verr.Fields)
}

func TestValidateBookingForm(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.Validate(validBooking()))

	cases := []struct {
		name   string
		mutate func(*BookingForm)
		field  string
	}{
		{"end before start", func(f *BookingForm) { f.EndTime = "09:00" }, "endTime"},
		{"zero length", func(f *BookingForm) { f.EndTime = f.StartTime }, "endTime"},
		{"bad clock", func(f *BookingForm) { f.StartTime = "25:00" }, "startTime"},
		{"no attendees", func(f *BookingForm) { f.Attendees = 0 }, "attendees"},
		{"bad date", func(f *BookingForm) { f.Date = "tomorrow" }, "date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validBooking()
			tc.mutate(&form)

			var verr *ValidationError
			require.ErrorAs(t, v.Validate(form), &verr)
			assert.Contains(t, verr.Fields, tc.field)
			assert.Len(t, verr.Fields, 1)
		})
	}
}

func TestSuccessMessages(t *testing.T) {
	assert.Equal(t, notification.Message{
		Title:       "Member Added",
		Description: "Successfully added Priya Nair to Premium plan",
	}, validMember().Success())
	assert.Equal(t, "Lead Added", LeadForm{Name: "Alex", Source: "Website"}.Success().Title)
	assert.Equal(t, "destructive", validBooking().Failure().Variant)
}

type capturingProcessor struct {
	subs []Submission
	err  error
}

func (c *capturingProcessor) Enqueue(ctx context.Context, sub Submission) error {
	if c.err != nil {
		return c.err
	}
	c.subs = append(c.subs, sub)
	return nil
}

func TestSubmit(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	proc := &capturingProcessor{}
	svc := &DefaultFormService{
		Validator: NewValidator(),
		Processor: proc,
		Now:       func() time.Time { return now },
		Logger:    zap.NewNop(),
	}

	receipt, err := svc.Submit(context.Background(), validMember())
	require.NoError(t, err)
	assert.Equal(t, KindMember, receipt.Kind)
	assert.Equal(t, now, receipt.AcceptedAt)
	assert.Len(t, receipt.ID, 36)
	require.Len(t, proc.subs, 1)
	assert.Equal(t, *receipt, proc.subs[0].Receipt)

	_, err = svc.Submit(context.Background(), MemberForm{})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Len(t, proc.subs, 1, "invalid forms are not enqueued")

	proc.err = errors.New("queue down")
	_, err = svc.Submit(context.Background(), validMember())
	assert.ErrorContains(t, err, "queue down")
}

func TestInlineProcessorCompletesAfterDelay(t *testing.T) {
	feed := notification.NewFeed(5)
	p := NewInlineProcessor(context.Background(), 10*time.Millisecond, feed, zap.NewNop())
	sub := Submission{Receipt: models.Receipt{ID: "r1", Kind: KindMember}, Form: validMember()}

	start := time.Now()
	require.NoError(t, p.Process(context.Background(), sub))
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)

	recent := feed.Recent(0)
	require.Len(t, recent, 1)
	assert.Equal(t, "Member Added", recent[0].Title)
	assert.Equal(t, "Successfully added Priya Nair to Premium plan", recent[0].Description)
}

func TestInlineProcessorHonoursCancellation(t *testing.T) {
	feed := notification.NewFeed(5)
	p := NewInlineProcessor(context.Background(), time.Hour, feed, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Process(ctx, Submission{Receipt: models.Receipt{ID: "r1"}, Form: validMember()})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, feed.Recent(0))
}

func TestInlineProcessorEnqueueRunsInBackground(t *testing.T) {
	feed := notification.NewFeed(5)
	p := NewInlineProcessor(context.Background(), time.Millisecond, feed, zap.NewNop())

	require.NoError(t, p.Enqueue(context.Background(), Submission{Receipt: models.Receipt{ID: "r1"}, Form: validBooking()}))
	assert.Eventually(t, func() bool { return len(feed.Recent(0)) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "Booking Requested", feed.Recent(1)[0].Title)
}

func TestInlineProcessorReportsDroppedSubmission(t *testing.T) {
	feed := notification.NewFeed(5)
	appCtx, cancel := context.WithCancel(context.Background())
	p := NewInlineProcessor(appCtx, time.Hour, feed, zap.NewNop())

	require.NoError(t, p.Enqueue(context.Background(), Submission{Receipt: models.Receipt{ID: "r1", Kind: KindMember}, Form: validMember()}))
	cancel()

	assert.Eventually(t, func() bool { return len(feed.Recent(0)) == 1 }, time.Second, 5*time.Millisecond)
	recent := feed.Recent(0)
	assert.Equal(t, "Error", recent[0].Title)
	assert.Equal(t, "Failed to add member. Please try again.", recent[0].Description)
	assert.Equal(t, models.VariantDestructive, recent[0].Variant)
}

func TestFailureFor(t *testing.T) {
	assert.Equal(t, "Failed to add lead. Please try again.", FailureFor(KindLead).Description)
	assert.Equal(t, "Failed to add booking. Please try again.", FailureFor(KindBooking).Description)
	assert.Equal(t, "Failed to process submission. Please try again.", FailureFor("invoice").Description)
	assert.Equal(t, "destructive", FailureFor("invoice").Variant)
}

type fakeEnqueuer struct {
	mu    sync.Mutex
	tasks []*asynq.Task
	opts  [][]asynq.Option
}

func (f *fakeEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, task)
	f.opts = append(f.opts, opts)
	return &asynq.TaskInfo{ID: "task-1", Type: task.Type()}, nil
}

func TestQueueProcessorRoundTrip(t *testing.T) {
	client := &fakeEnqueuer{}
	p := &QueueProcessor{Client: client, Delay: time.Second, Logger: zap.NewNop()}
	sub := Submission{
		Receipt: models.Receipt{ID: "r-42", Kind: KindBooking, AcceptedAt: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)},
		Form:    validBooking(),
	}
	require.NoError(t, p.Enqueue(context.Background(), sub))
	require.Len(t, client.tasks, 1)
	assert.Equal(t, tasks.TypeFormSubmit, client.tasks[0].Type())

	payload, err := tasks.ParseSubmission(client.tasks[0])
	require.NoError(t, err)
	decoded, err := Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, sub.Receipt.ID, decoded.Receipt.ID)
	assert.Equal(t, validBooking(), decoded.Form)
}

func TestDecodeUnknownKind(t *testing.T) {
	_, err := Decode(tasks.SubmissionPayload{Kind: "invoice", Form: []byte(`{}`)})
	assert.ErrorContains(t, err, "unknown form kind")
}
