package analytics

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	catalogRepo "workhub/database/repository/catalog"
	"workhub/models"
	"workhub/services/reports"
)

// AnalyticsService answers the analytics view.
type AnalyticsService interface {
	Overview(ctx context.Context) (*models.AnalyticsOverview, error)
	Revenue(ctx context.Context) ([]models.RevenuePoint, error)
	Utilization(ctx context.Context) ([]models.UtilizationBucket, error)
	Occupancy(ctx context.Context) ([]models.OccupancyPoint, error)
	ExportCSV(ctx context.Context, now time.Time) (*reports.Report, error)
}

type DefaultAnalyticsService struct {
	Catalog   catalogRepo.Catalog
	Publisher *reports.Publisher
}

func (s *DefaultAnalyticsService) Revenue(ctx context.Context) ([]models.RevenuePoint, error) {
	points, err := s.Catalog.Revenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load revenue: %w", err)
	}
	return points, nil
}

func (s *DefaultAnalyticsService) Utilization(ctx context.Context) ([]models.UtilizationBucket, error) {
	buckets, err := s.Catalog.Utilization(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load utilization: %w", err)
	}
	return buckets, nil
}

func (s *DefaultAnalyticsService) Occupancy(ctx context.Context) ([]models.OccupancyPoint, error) {
	points, err := s.Catalog.Occupancy(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load occupancy: %w", err)
	}
	return points, nil
}

// Overview derives the KPI cards and bundles the chart series.
func (s *DefaultAnalyticsService) Overview(ctx context.Context) (*models.AnalyticsOverview, error) {
	revenue, err := s.Revenue(ctx)
	if err != nil {
		return nil, err
	}
	utilization, err := s.Utilization(ctx)
	if err != nil {
		return nil, err
	}
	occupancy, err := s.Occupancy(ctx)
	if err != nil {
		return nil, err
	}

	kpis := []models.KPI{
		{Label: "Average Occupancy", Value: AverageOccupancy(occupancy), Unit: "%"},
		{Label: "Revenue Growth", Value: RevenueGrowth(revenue), Unit: "%", Change: growthWindow(revenue)},
		{Label: "Forecast Accuracy", Value: ForecastAccuracy(revenue), Unit: "%"},
		{Label: "Average Utilization", Value: AverageUtilization(utilization), Unit: "%"},
	}
	return &models.AnalyticsOverview{
		KPIs:        kpis,
		Revenue:     revenue,
		Utilization: utilization,
		Occupancy:   occupancy,
	}, nil
}

// ExportCSV renders the revenue series as analytics-<date>.csv.
func (s *DefaultAnalyticsService) ExportCSV(ctx context.Context, now time.Time) (*reports.Report, error) {
	revenue, err := s.Revenue(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(revenue))
	for _, p := range revenue {
		rows = append(rows, []string{p.Month, strconv.FormatInt(p.Revenue, 10), strconv.FormatInt(p.Forecast, 10)})
	}
	return s.Publisher.Publish(ctx, "analytics", now, []string{"month", "revenue", "forecast"}, rows)
}

// AverageOccupancy is the mean hourly occupancy in percent.
func AverageOccupancy(points []models.OccupancyPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	total := 0
	for _, p := range points {
		total += p.Occupancy
	}
	return round1(float64(total) / float64(len(points)))
}

// AverageUtilization is the mean utilization across space types in percent.
func AverageUtilization(buckets []models.UtilizationBucket) float64 {
	if len(buckets) == 0 {
		return 0
	}
	total := 0
	for _, b := range buckets {
		total += b.Value
	}
	return round1(float64(total) / float64(len(buckets)))
}

// RevenueGrowth compares the last month against the first, in percent.
func RevenueGrowth(points []models.RevenuePoint) float64 {
	if len(points) < 2 || points[0].Revenue == 0 {
		return 0
	}
	first, last := points[0].Revenue, points[len(points)-1].Revenue
	return round1(float64(last-first) / float64(first) * 100)
}

// ForecastAccuracy is total revenue over total forecast, in percent.
func ForecastAccuracy(points []models.RevenuePoint) float64 {
	var revenue, forecast int64
	for _, p := range points {
		revenue += p.Revenue
		forecast += p.Forecast
	}
	if forecast == 0 {
		return 0
	}
	return round1(float64(revenue) / float64(forecast) * 100)
}

func growthWindow(points []models.RevenuePoint) string {
	if len(points) < 2 {
		return ""
	}
	return points[0].Month + " to " + points[len(points)-1].Month
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
