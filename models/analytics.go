package models

type RevenuePoint struct {
	Month    string `bson:"month" json:"month"`
	Revenue  int64  `bson:"revenue" json:"revenue"`
	Forecast int64  `bson:"forecast" json:"forecast"`
}

type UtilizationBucket struct {
	Name  string `bson:"name" json:"name"`
	Value int    `bson:"value" json:"value"` // percent
}

type OccupancyPoint struct {
	Time      string `bson:"time" json:"time"`
	Occupancy int    `bson:"occupancy" json:"occupancy"` // percent
}

// KPI is one metric card.
type KPI struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit,omitempty"`
	Change string  `json:"change,omitempty"`
}

type AnalyticsOverview struct {
	KPIs        []KPI               `json:"kpis"`
	Revenue     []RevenuePoint      `json:"revenue"`
	Utilization []UtilizationBucket `json:"utilization"`
	Occupancy   []OccupancyPoint    `json:"occupancy"`
}

// DashboardSummary backs the landing page cards.
type DashboardSummary struct {
	Date           string    `json:"date"`
	Occupancy      float64   `json:"occupancy"`
	ActiveMembers  int       `json:"activeMembers"`
	BookingsToday  int       `json:"bookingsToday"`
	Revenue        int64     `json:"revenue"`
	RevenueMonth   string    `json:"revenueMonth"`
	RecentActivity []Booking `json:"recentActivity"`
}
