package forms

import (
	"context"
	"time"

	"workhub/models"
	"workhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSubmitDelay stands in for the round trip of a real backend.
const DefaultSubmitDelay = time.Second

// Submission is an accepted form waiting to be processed.
type Submission struct {
	Receipt models.Receipt
	Form    Form
}

// Processor takes accepted submissions off the request path.
type Processor interface {
	Enqueue(ctx context.Context, sub Submission) error
}

// FormService validates and accepts dashboard forms.
type FormService interface {
	Submit(ctx context.Context, form Form) (*models.Receipt, error)
}

type DefaultFormService struct {
	Validator *Validator
	Processor Processor
	Now       func() time.Time
	Logger    *zap.Logger
}

func (s *DefaultFormService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

// Submit validates form and hands it to the processor. A *ValidationError is
// returned for invalid input; nothing is enqueued in that case.
func (s *DefaultFormService) Submit(ctx context.Context, form Form) (*models.Receipt, error) {
	if err := s.Validator.Validate(form); err != nil {
		return nil, err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	receipt := models.Receipt{
		ID:         uuid.NewString(),
		Kind:       form.Kind(),
		AcceptedAt: now().UTC(),
	}
	if err := s.Processor.Enqueue(ctx, Submission{Receipt: receipt, Form: form}); err != nil {
		return nil, err
	}

	s.logger().Info("Form submission accepted",
		zap.String("receiptId", receipt.ID), zap.String("kind", receipt.Kind))
	return &receipt, nil
}
