package billing

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	catalogRepo "workhub/database/repository/catalog"
	"workhub/models"
	"workhub/services/notification"
	"workhub/services/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*DefaultBillingService, *notification.Feed) {
	t.Helper()
	cat, err := catalogRepo.NewMemoryCatalog(catalogRepo.DefaultSeed())
	require.NoError(t, err)
	feed := notification.NewFeed(10)
	return &DefaultBillingService{
		Catalog:   cat,
		Notifier:  feed,
		Publisher: &reports.Publisher{},
		Now:       func() time.Time { return fixedNow },
		Logger:    zap.NewNop(),
	}, feed
}

func TestListInvoices(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	all, err := svc.ListInvoices(ctx, InvoiceFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "INV-001", all[0].ID)
	assert.Equal(t, "₹1,29,900", all[0].Display)
	assert.Equal(t, models.AffordanceDefault, all[0].Affordance)
	assert.Equal(t, "₹59,900", all[1].Display)
	assert.Equal(t, models.AffordanceSecondary, all[1].Affordance)
	assert.Equal(t, models.AffordanceDestructive, all[2].Affordance)

	paid, err := svc.ListInvoices(ctx, InvoiceFilter{Status: "paid"})
	require.NoError(t, err)
	require.Len(t, paid, 2)
	assert.Equal(t, "INV-004", paid[1].ID)

	byMember, err := svc.ListInvoices(ctx, InvoiceFilter{Query: "studio"})
	require.NoError(t, err)
	require.Len(t, byMember, 1)
	assert.Equal(t, "INV-003", byMember[0].ID)
}

func TestStats(t *testing.T) {
	svc, _ := newService(t)
	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "INR", stats.Currency)
	assert.Equal(t, int64(21980000), stats.Collected)
	assert.Equal(t, int64(8980000), stats.Outstanding)
	assert.Equal(t, 2, stats.OutstandingCount)
	assert.Equal(t, 1, stats.OverdueCount)
	assert.Equal(t, int64(30960000), stats.Processed)
	assert.Equal(t, "₹2,19,800", stats.CollectedDisplay)
	assert.Equal(t, "₹89,800", stats.OutstandingDisplay)
	assert.Equal(t, "₹3,09,600", stats.ProcessedDisplay)
}

func TestStatsEmptyCatalog(t *testing.T) {
	cat, err := catalogRepo.NewMemoryCatalog(catalogRepo.Seed{})
	require.NoError(t, err)
	stats, err := (&DefaultBillingService{Catalog: cat}).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultCurrency, stats.Currency)
	assert.Equal(t, "₹0", stats.ProcessedDisplay)
}

func TestGenerateInvoice(t *testing.T) {
	svc, feed := newService(t)
	ctx := context.Background()

	draft, err := svc.GenerateInvoice(ctx, "Design Studio")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(draft.ID, "INV-"))
	assert.Equal(t, "Basic", draft.Plan)
	assert.Equal(t, int64(2990000), draft.Amount)
	assert.Equal(t, StatusPending, draft.Status)
	assert.Equal(t, "2026-11-02", draft.DueDate)

	recent := feed.Recent(1)
	require.Len(t, recent, 1)
	assert.Equal(t, "Invoice Generated", recent[0].Title)
	assert.Equal(t, "New invoice has been created successfully.", recent[0].Description)

	// Drafts are never stored.
	all, err := svc.ListInvoices(ctx, InvoiceFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	unknown, err := svc.GenerateInvoice(ctx, "Newcomer LLC")
	require.NoError(t, err)
	assert.Equal(t, DefaultCurrency, unknown.Currency)
	assert.Zero(t, unknown.Amount)
	assert.NotEqual(t, draft.ID, unknown.ID)

	_, err = svc.GenerateInvoice(ctx, "   ")
	assert.True(t, errors.Is(err, ErrMemberRequired))
}

func TestExportCSV(t *testing.T) {
	svc, _ := newService(t)
	report, err := svc.ExportCSV(context.Background(), fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "invoices-2026-10-19.csv", report.Name)
	lines := strings.Split(strings.TrimSpace(string(report.Content)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "id,member,plan,amount,currency,dueDate,status", lines[0])
	assert.Equal(t, "INV-001,TechCorp Inc.,Enterprise,129900.00,INR,2024-02-15,Paid", lines[1])
}

func TestMajorUnits(t *testing.T) {
	assert.Equal(t, "129900.00", majorUnits(12990000))
	assert.Equal(t, "0.05", majorUnits(5))
	assert.Equal(t, "-1.50", majorUnits(-150))
}
