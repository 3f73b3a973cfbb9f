package billing

import (
	"context"
	"errors"
	"time"

	catalogRepo "workhub/database/repository/catalog"
	"workhub/models"
	"workhub/services/notification"
	"workhub/services/reports"

	"go.uber.org/zap"
)

var ErrMemberRequired = errors.New("member is required")

// BillingService answers the billing view.
type BillingService interface {
	ListInvoices(ctx context.Context, f InvoiceFilter) ([]models.InvoiceView, error)
	Stats(ctx context.Context) (*models.BillingStats, error)
	GenerateInvoice(ctx context.Context, member string) (*models.Invoice, error)
	ExportCSV(ctx context.Context, now time.Time) (*reports.Report, error)
}

// DefaultBillingService implements BillingService over the catalog.
type DefaultBillingService struct {
	Catalog   catalogRepo.Catalog
	Notifier  notification.Notifier
	Publisher *reports.Publisher
	Now       func() time.Time
	Logger    *zap.Logger
}

// InvoiceFilter narrows the invoice list. Empty fields match everything.
type InvoiceFilter struct {
	Status string `form:"status"`
	Query  string `form:"q"`
}

const (
	StatusPaid    = "Paid"
	StatusPending = "Pending"
	StatusOverdue = "Overdue"

	// DefaultCurrency is used when the catalog holds no invoices.
	DefaultCurrency = "INR"
	// DraftTerm is how far out a generated invoice falls due.
	DraftTerm = 14 * 24 * time.Hour
)
