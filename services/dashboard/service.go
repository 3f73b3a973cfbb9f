package dashboard

import (
	"context"
	"time"

	"workhub/models"
	"workhub/services/analytics"
	"workhub/services/directory"
	"workhub/services/schedule"
	"workhub/utils"

	"golang.org/x/sync/errgroup"
)

// RecentActivityLimit caps the activity list on the landing page.
const RecentActivityLimit = 5

type DashboardService interface {
	Summary(ctx context.Context, date time.Time) (*models.DashboardSummary, error)
}

// DefaultDashboardService composes the other views into the landing page.
type DefaultDashboardService struct {
	Schedule  schedule.ScheduleService
	Directory directory.DirectoryService
	Analytics analytics.AnalyticsService
}

func (s *DefaultDashboardService) Summary(ctx context.Context, date time.Time) (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{Date: date.Format(utils.DateLayout)}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.Schedule.Stats(gctx, date)
		if err != nil {
			return err
		}
		summary.BookingsToday = stats.TotalBookings
		return nil
	})
	g.Go(func() error {
		upcoming, err := s.Schedule.Upcoming(gctx)
		if err != nil {
			return err
		}
		if len(upcoming) > RecentActivityLimit {
			upcoming = upcoming[:RecentActivityLimit]
		}
		summary.RecentActivity = upcoming
		return nil
	})
	g.Go(func() error {
		stats, err := s.Directory.MemberStats(gctx)
		if err != nil {
			return err
		}
		summary.ActiveMembers = stats.Active
		return nil
	})
	g.Go(func() error {
		occupancy, err := s.Analytics.Occupancy(gctx)
		if err != nil {
			return err
		}
		summary.Occupancy = analytics.AverageOccupancy(occupancy)
		return nil
	})
	g.Go(func() error {
		revenue, err := s.Analytics.Revenue(gctx)
		if err != nil {
			return err
		}
		if n := len(revenue); n > 0 {
			summary.Revenue = revenue[n-1].Revenue
			summary.RevenueMonth = revenue[n-1].Month
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}
