package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	HealthHandler gin.HandlerFunc

	// Dashboard
	DashboardSummaryHandler gin.HandlerFunc

	// Bookings calendar
	GetDayHandler          gin.HandlerFunc
	NavigateDayHandler     gin.HandlerFunc
	GetSlotHandler         gin.HandlerFunc
	BookSlotHandler        gin.HandlerFunc
	GetBookingStatsHandler gin.HandlerFunc
	GetUpcomingHandler     gin.HandlerFunc

	// Members and leads
	ListMembersHandler gin.HandlerFunc
	MemberStatsHandler gin.HandlerFunc
	ListLeadsHandler   gin.HandlerFunc
	LeadStatsHandler   gin.HandlerFunc

	// Billing
	ListInvoicesHandler    gin.HandlerFunc
	BillingStatsHandler    gin.HandlerFunc
	GenerateInvoiceHandler gin.HandlerFunc
	ExportInvoicesHandler  gin.HandlerFunc

	// Spaces
	ListSpacesHandler gin.HandlerFunc
	SpaceStatsHandler gin.HandlerFunc
	GetSpaceHandler   gin.HandlerFunc
	BookSpaceHandler  gin.HandlerFunc

	// Analytics
	AnalyticsOverviewHandler    gin.HandlerFunc
	AnalyticsRevenueHandler     gin.HandlerFunc
	AnalyticsUtilizationHandler gin.HandlerFunc
	AnalyticsOccupancyHandler   gin.HandlerFunc
	ExportAnalyticsHandler      gin.HandlerFunc

	// Forms
	SubmitMemberHandler  gin.HandlerFunc
	SubmitLeadHandler    gin.HandlerFunc
	SubmitBookingHandler gin.HandlerFunc

	// Notifications
	ListNotificationsHandler gin.HandlerFunc
}

// Handlers are the per-area handlers a bundle is assembled from.
type Handlers struct {
	Schedule      *ScheduleHandler
	Directory     *DirectoryHandler
	Billing       *BillingHandler
	Spaces        *SpaceHandler
	Analytics     *AnalyticsHandler
	Dashboard     *DashboardHandler
	Forms         *FormHandler
	Notifications *NotificationHandler
}

// NewHandlerBundle flattens the per-area handlers into a bundle.
func NewHandlerBundle(h Handlers) *HandlerBundle {
	return &HandlerBundle{
		HealthHandler: HealthHandler,

		DashboardSummaryHandler: h.Dashboard.SummaryHandler,

		GetDayHandler:          h.Schedule.GetDayHandler,
		NavigateDayHandler:     h.Schedule.NavigateDayHandler,
		GetSlotHandler:         h.Schedule.GetSlotHandler,
		BookSlotHandler:        h.Schedule.BookSlotHandler,
		GetBookingStatsHandler: h.Schedule.GetBookingStatsHandler,
		GetUpcomingHandler:     h.Schedule.GetUpcomingHandler,

		ListMembersHandler: h.Directory.ListMembersHandler,
		MemberStatsHandler: h.Directory.MemberStatsHandler,
		ListLeadsHandler:   h.Directory.ListLeadsHandler,
		LeadStatsHandler:   h.Directory.LeadStatsHandler,

		ListInvoicesHandler:    h.Billing.ListInvoicesHandler,
		BillingStatsHandler:    h.Billing.BillingStatsHandler,
		GenerateInvoiceHandler: h.Billing.GenerateInvoiceHandler,
		ExportInvoicesHandler:  h.Billing.ExportInvoicesHandler,

		ListSpacesHandler: h.Spaces.ListSpacesHandler,
		SpaceStatsHandler: h.Spaces.SpaceStatsHandler,
		GetSpaceHandler:   h.Spaces.GetSpaceHandler,
		BookSpaceHandler:  h.Spaces.BookSpaceHandler,

		AnalyticsOverviewHandler:    h.Analytics.OverviewHandler,
		AnalyticsRevenueHandler:     h.Analytics.RevenueHandler,
		AnalyticsUtilizationHandler: h.Analytics.UtilizationHandler,
		AnalyticsOccupancyHandler:   h.Analytics.OccupancyHandler,
		ExportAnalyticsHandler:      h.Analytics.ExportAnalyticsHandler,

		SubmitMemberHandler:  h.Forms.SubmitMemberHandler,
		SubmitLeadHandler:    h.Forms.SubmitLeadHandler,
		SubmitBookingHandler: h.Forms.SubmitBookingHandler,

		ListNotificationsHandler: h.Notifications.ListNotificationsHandler,
	}
}
