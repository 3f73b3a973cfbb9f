package directory

import (
	"context"
	"fmt"
	"strings"

	"workhub/models"
)

func (s *DefaultDirectoryService) SearchMembers(ctx context.Context, f MemberFilter) ([]models.Member, error) {
	members, err := s.Catalog.Members(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		if !equalFold(f.Plan, m.Plan) || !equalFold(f.Status, m.Status) {
			continue
		}
		if !containsAny(f.Query, m.Name, m.Email, m.Company) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *DefaultDirectoryService) MemberStats(ctx context.Context) (*models.MemberStats, error) {
	members, err := s.Catalog.Members(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	stats := &models.MemberStats{Total: len(members)}
	for _, m := range members {
		switch m.Status {
		case "Active":
			stats.Active++
		case "Pending":
			stats.Pending++
		}
		if m.Plan == "Premium" || m.Plan == "Enterprise" {
			stats.PremiumPlans++
		}
		stats.TotalCredits += m.Credits
	}
	stats.PremiumShare = percent(stats.PremiumPlans, stats.Total)
	return stats, nil
}

// equalFold treats an empty filter value as a wildcard.
func equalFold(filter, value string) bool {
	return filter == "" || strings.EqualFold(filter, value)
}

// containsAny reports whether query occurs, case-insensitively, in any field.
func containsAny(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// percent rounds part/total to one decimal place.
func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part*1000/total) / 10
}
