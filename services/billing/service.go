package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"workhub/models"
	"workhub/services/notification"
	"workhub/services/reports"
	"workhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultBillingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

func (s *DefaultBillingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// InvoiceAffordance maps an invoice status to its badge variant.
func InvoiceAffordance(status string) models.Affordance {
	switch status {
	case StatusPaid:
		return models.AffordanceDefault
	case StatusPending:
		return models.AffordanceSecondary
	case StatusOverdue:
		return models.AffordanceDestructive
	default:
		return models.AffordanceOutline
	}
}

func (s *DefaultBillingService) ListInvoices(ctx context.Context, f InvoiceFilter) ([]models.InvoiceView, error) {
	invoices, err := s.Catalog.Invoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	views := make([]models.InvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		if f.Status != "" && !strings.EqualFold(f.Status, inv.Status) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(inv.ID), q) && !strings.Contains(strings.ToLower(inv.Member), q) {
			continue
		}
		views = append(views, models.InvoiceView{
			Invoice:    inv,
			Display:    utils.FormatAmount(inv.Amount, inv.Currency),
			Affordance: InvoiceAffordance(inv.Status),
		})
	}
	return views, nil
}

// Stats totals the invoices. All invoices are assumed to share the currency
// of the first one.
func (s *DefaultBillingService) Stats(ctx context.Context) (*models.BillingStats, error) {
	invoices, err := s.Catalog.Invoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}

	stats := &models.BillingStats{Currency: DefaultCurrency}
	if len(invoices) > 0 {
		stats.Currency = invoices[0].Currency
	}
	for _, inv := range invoices {
		stats.Processed += inv.Amount
		switch inv.Status {
		case StatusPaid:
			stats.Collected += inv.Amount
		case StatusOverdue:
			stats.OverdueCount++
			fallthrough
		case StatusPending:
			stats.Outstanding += inv.Amount
			stats.OutstandingCount++
		}
	}
	stats.CollectedDisplay = utils.FormatAmount(stats.Collected, stats.Currency)
	stats.OutstandingDisplay = utils.FormatAmount(stats.Outstanding, stats.Currency)
	stats.ProcessedDisplay = utils.FormatAmount(stats.Processed, stats.Currency)
	return stats, nil
}

// GenerateInvoice drafts an invoice for member. The draft is returned and
// announced but not stored.
func (s *DefaultBillingService) GenerateInvoice(ctx context.Context, member string) (*models.Invoice, error) {
	member = strings.TrimSpace(member)
	if member == "" {
		return nil, ErrMemberRequired
	}

	invoices, err := s.Catalog.Invoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}

	draft := &models.Invoice{
		ID:       "INV-" + strings.ToUpper(uuid.NewString()[:8]),
		Member:   member,
		Currency: DefaultCurrency,
		DueDate:  s.now().Add(DraftTerm).Format(utils.DateLayout),
		Status:   StatusPending,
	}
	// Carry plan and amount over from the member's latest invoice.
	for i := len(invoices) - 1; i >= 0; i-- {
		if strings.EqualFold(invoices[i].Member, member) {
			draft.Plan = invoices[i].Plan
			draft.Amount = invoices[i].Amount
			draft.Currency = invoices[i].Currency
			break
		}
	}

	s.logger().Info("Invoice drafted",
		zap.String("invoiceId", draft.ID), zap.String("member", draft.Member))
	notification.Send(ctx, s.Notifier, notification.Message{
		Title:       "Invoice Generated",
		Description: "New invoice has been created successfully.",
	}, s.logger())
	return draft, nil
}

// ExportCSV renders every invoice as invoices-<date>.csv.
func (s *DefaultBillingService) ExportCSV(ctx context.Context, now time.Time) (*reports.Report, error) {
	invoices, err := s.Catalog.Invoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}

	rows := make([][]string, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, []string{
			inv.ID, inv.Member, inv.Plan, majorUnits(inv.Amount), inv.Currency, inv.DueDate, inv.Status,
		})
	}
	header := []string{"id", "member", "plan", "amount", "currency", "dueDate", "status"}
	return s.Publisher.Publish(ctx, "invoices", now, header, rows)
}

// majorUnits renders minor units as a plain decimal, e.g. 12990000 -> "129900.00".
func majorUnits(minor int64) string {
	sign := ""
	if minor < 0 {
		sign, minor = "-", -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}
