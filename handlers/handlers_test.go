package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	catalogRepo "workhub/database/repository/catalog"
	"workhub/handlers"
	"workhub/models"
	"workhub/routes"
	"workhub/services/analytics"
	"workhub/services/billing"
	"workhub/services/dashboard"
	"workhub/services/directory"
	"workhub/services/forms"
	"workhub/services/notification"
	"workhub/services/reports"
	"workhub/services/schedule"
	"workhub/services/spaces"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var today = time.Date(2026, 10, 19, 9, 15, 0, 0, time.UTC)

type capturingProcessor struct {
	subs []forms.Submission
}

func (c *capturingProcessor) Enqueue(_ context.Context, sub forms.Submission) error {
	c.subs = append(c.subs, sub)
	return nil
}

type testServer struct {
	router    *gin.Engine
	feed      *notification.Feed
	processor *capturingProcessor
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalogRepo.NewMemoryCatalog(catalogRepo.DefaultSeed())
	require.NoError(t, err)

	logger := zap.NewNop()
	feed := notification.NewFeed(20)
	clock := handlers.Clock(func() time.Time { return today })
	publisher := &reports.Publisher{Logger: logger}
	processor := &capturingProcessor{}

	scheduleService := &schedule.DefaultScheduleService{Catalog: cat, Notifier: feed, Logger: logger}
	directoryService := &directory.DefaultDirectoryService{Catalog: cat}
	analyticsService := &analytics.DefaultAnalyticsService{Catalog: cat, Publisher: publisher}

	bundle := handlers.NewHandlerBundle(handlers.Handlers{
		Schedule:  handlers.NewScheduleHandler(scheduleService, clock),
		Directory: handlers.NewDirectoryHandler(directoryService),
		Billing: handlers.NewBillingHandler(&billing.DefaultBillingService{
			Catalog: cat, Notifier: feed, Publisher: publisher, Now: clock, Logger: logger,
		}, clock),
		Spaces:    handlers.NewSpaceHandler(&spaces.DefaultSpaceService{Catalog: cat, Notifier: feed, Logger: logger}),
		Analytics: handlers.NewAnalyticsHandler(analyticsService, clock),
		Dashboard: handlers.NewDashboardHandler(&dashboard.DefaultDashboardService{
			Schedule: scheduleService, Directory: directoryService, Analytics: analyticsService,
		}, clock),
		Forms: handlers.NewFormHandler(&forms.DefaultFormService{
			Validator: forms.NewValidator(), Processor: processor, Logger: logger,
		}),
		Notifications: handlers.NewNotificationHandler(feed),
	})

	r := gin.New()
	routes.RegisterRoutes(r, bundle)
	return &testServer{router: r, feed: feed, processor: processor}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestGetDay(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/bookings/day?date=2026-10-20", "")
	require.Equal(t, http.StatusOK, w.Code)
	day := decode[models.DaySchedule](t, w)
	assert.Equal(t, "2026-10-20", day.Date)
	assert.Equal(t, "Tuesday, October 20, 2026", day.Label)
	require.Len(t, day.Slots, 12)
	assert.Equal(t, "08:00", day.Slots[0].Time)
	assert.True(t, day.Slots[0].Available)
	require.NotNil(t, day.Slots[1].Booking)
	assert.Equal(t, "Team Standup", day.Slots[1].Booking.Title)

	w = s.do(t, http.MethodGet, "/api/bookings/day", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2026-10-19", decode[models.DaySchedule](t, w).Date, "defaults to today")

	w = s.do(t, http.MethodGet, "/api/bookings/day?date=19-10-2026", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNavigateDay(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/bookings/day/prev?date=2026-10-01", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2026-09-30", decode[models.DaySchedule](t, w).Date)

	recent := s.feed.Recent(1)
	require.Len(t, recent, 1)
	assert.Equal(t, "Date Changed", recent[0].Title)
	assert.Equal(t, "Viewing bookings for Wednesday, September 30, 2026", recent[0].Description)

	w = s.do(t, http.MethodGet, "/api/bookings/day/sideways", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSlotEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/bookings/slots/11:45", "")
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[models.SlotView](t, w)
	require.NotNil(t, view.Booking)
	assert.Equal(t, "Interview Session", view.Booking.Title)
	assert.Equal(t, models.AffordanceCaution, view.Affordance)

	w = s.do(t, http.MethodPost, "/api/bookings/slots/book", `{"date":"2026-10-19","slot":"10:00"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Booking slot for 10:00. Please fill out the booking form.", s.feed.Recent(1)[0].Description)

	w = s.do(t, http.MethodPost, "/api/bookings/slots/book", `{"slot":"15:00"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPost, "/api/bookings/slots/book", `{"slot":"07:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/bookings/slots/book", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingStatsAndUpcoming(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/bookings/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[models.BookingStats](t, w)
	assert.Equal(t, 3, stats.TotalBookings)
	assert.Equal(t, 23, stats.TotalAttendees)

	w = s.do(t, http.MethodGet, "/api/bookings/upcoming", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Bookings []models.Booking `json:"bookings"`
		Slots    []string         `json:"slots"`
	}](t, w)
	require.Len(t, body.Bookings, 3)
	assert.Equal(t, "09:00", body.Bookings[0].StartTime)
	assert.Len(t, body.Slots, 12)
}

func TestDirectoryEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/members?q=chen", "")
	require.Equal(t, http.StatusOK, w.Code)
	members := decode[struct {
		Members []models.Member `json:"members"`
		Count   int             `json:"count"`
	}](t, w)
	assert.Equal(t, 1, members.Count)
	assert.Equal(t, "Mike Chen", members.Members[0].Name)

	w = s.do(t, http.MethodGet, "/api/leads?stage=Qualified", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"affordance":"secondary"`)

	w = s.do(t, http.MethodGet, "/api/leads/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decode[models.LeadStats](t, w).Total)
}

func TestBillingEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/billing/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "₹89,800", decode[models.BillingStats](t, w).OutstandingDisplay)

	w = s.do(t, http.MethodPost, "/api/billing/invoices/generate", `{"member":"Marketing Co."}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Invoice Generated", s.feed.Recent(1)[0].Title)

	w = s.do(t, http.MethodPost, "/api/billing/invoices/generate", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/billing/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="invoices-2026-10-19.csv"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "id,member,plan,amount,currency,dueDate,status\n"))
}

func TestSpaceEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/spaces?type=meeting-room", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/spaces/X9", "").Code)
	assert.Equal(t, http.StatusConflict, s.do(t, http.MethodPost, "/api/spaces/D002/book", "").Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/spaces/M001/book", "").Code)

	w = s.do(t, http.MethodGet, "/api/spaces/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decode[models.SpaceStats](t, w).Available)
}

func TestAnalyticsEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/analytics/overview", "")
	require.Equal(t, http.StatusOK, w.Code)
	overview := decode[models.AnalyticsOverview](t, w)
	assert.Len(t, overview.KPIs, 4)

	for _, path := range []string{"/api/analytics/revenue", "/api/analytics/utilization", "/api/analytics/occupancy"} {
		assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, path, "").Code, path)
	}

	w = s.do(t, http.MethodGet, "/api/analytics/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "analytics-2026-10-19.csv")
}

func TestDashboardSummary(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[models.DashboardSummary](t, w)
	assert.Equal(t, "2026-10-19", summary.Date)
	assert.Equal(t, 3, summary.ActiveMembers)
	assert.Equal(t, 3, summary.BookingsToday)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/dashboard?date=nope", "").Code)
}

func TestFormEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/forms/members", `{"firstName":"","email":"bad","phone":"123"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode[struct {
		Fields map[string]string `json:"fields"`
	}](t, w)
	assert.Equal(t, "First name is required", body.Fields["firstName"])
	assert.Equal(t, "Valid email is required", body.Fields["email"])
	assert.Equal(t, "Valid phone number is required", body.Fields["phone"])
	assert.Empty(t, s.processor.subs)

	w = s.do(t, http.MethodPost, "/api/forms/members", `{
		"firstName":"Ana","lastName":"Silva","email":"ana@example.com","phone":"5550001111",
		"company":"Silva Labs","plan":"Basic","startDate":"2026-11-01"}`)
	require.Equal(t, http.StatusAccepted, w.Code)
	receipt := decode[struct {
		Receipt models.Receipt `json:"receipt"`
	}](t, w).Receipt
	assert.Equal(t, forms.KindMember, receipt.Kind)
	require.Len(t, s.processor.subs, 1)
	assert.Equal(t, receipt.ID, s.processor.subs[0].Receipt.ID)

	w = s.do(t, http.MethodPost, "/api/forms/bookings", `{
		"title":"Sprint Review","space":"Meeting Room A","date":"2026-10-20",
		"startTime":"15:00","endTime":"14:00","attendees":5}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "End time must be after start time")

	w = s.do(t, http.MethodPost, "/api/forms/leads", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationFeed(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/api/bookings/day/next", "")
	s.do(t, http.MethodGet, "/api/bookings/day/next", "")

	w := s.do(t, http.MethodGet, "/api/notifications?limit=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/notifications?limit=abc", "").Code)
}
