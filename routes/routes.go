package routes

import (
	"time"

	"workhub/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterDashboardRoutes registers the landing page endpoint.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/dashboard", hb.DashboardSummaryHandler)
}

// RegisterBookingRoutes registers the booking calendar endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("/day", hb.GetDayHandler)
		api.GET("/day/:direction", hb.NavigateDayHandler)
		api.POST("/slots/book", hb.BookSlotHandler)
		api.GET("/slots/:slot", hb.GetSlotHandler)
		api.GET("/stats", hb.GetBookingStatsHandler)
		api.GET("/upcoming", hb.GetUpcomingHandler)
	}
}

// RegisterDirectoryRoutes registers member and lead endpoints.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	members := r.Group("/api/members")
	{
		members.GET("", hb.ListMembersHandler)
		members.GET("/stats", hb.MemberStatsHandler)
	}
	leads := r.Group("/api/leads")
	{
		leads.GET("", hb.ListLeadsHandler)
		leads.GET("/stats", hb.LeadStatsHandler)
	}
}

// RegisterBillingRoutes registers invoice endpoints.
func RegisterBillingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/billing")
	{
		api.GET("/invoices", hb.ListInvoicesHandler)
		api.POST("/invoices/generate", hb.GenerateInvoiceHandler)
		api.GET("/stats", hb.BillingStatsHandler)
		api.GET("/export", hb.ExportInvoicesHandler)
	}
}

// RegisterSpaceRoutes registers floor plan endpoints.
func RegisterSpaceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/spaces")
	{
		api.GET("", hb.ListSpacesHandler)
		api.GET("/stats", hb.SpaceStatsHandler)
		api.GET("/:id", hb.GetSpaceHandler)
		api.POST("/:id/book", hb.BookSpaceHandler)
	}
}

// RegisterAnalyticsRoutes registers chart and KPI endpoints.
func RegisterAnalyticsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/analytics")
	{
		api.GET("/overview", hb.AnalyticsOverviewHandler)
		api.GET("/revenue", hb.AnalyticsRevenueHandler)
		api.GET("/utilization", hb.AnalyticsUtilizationHandler)
		api.GET("/occupancy", hb.AnalyticsOccupancyHandler)
		api.GET("/export", hb.ExportAnalyticsHandler)
	}
}

// RegisterFormRoutes registers form submission endpoints.
func RegisterFormRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/forms")
	{
		api.POST("/members", hb.SubmitMemberHandler)
		api.POST("/leads", hb.SubmitLeadHandler)
		api.POST("/bookings", hb.SubmitBookingHandler)
	}
}

// RegisterNotificationRoutes registers the notification feed.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/notifications", hb.ListNotificationsHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID", "X-Report-Archive"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterBillingRoutes(r, hb)
	RegisterSpaceRoutes(r, hb)
	RegisterAnalyticsRoutes(r, hb)
	RegisterFormRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
}
