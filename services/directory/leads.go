package directory

import (
	"context"
	"fmt"
	"math"

	"workhub/models"
)

func (s *DefaultDirectoryService) SearchLeads(ctx context.Context, f LeadFilter) ([]models.Lead, error) {
	leads, err := s.Catalog.Leads(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leads: %w", err)
	}

	out := make([]models.Lead, 0, len(leads))
	for _, l := range leads {
		if !equalFold(f.Stage, l.Stage) || !equalFold(f.Source, l.Source) {
			continue
		}
		if !containsAny(f.Query, l.Name, l.Email, l.Phone) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (s *DefaultDirectoryService) LeadStats(ctx context.Context) (*models.LeadStats, error) {
	leads, err := s.Catalog.Leads(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leads: %w", err)
	}

	byStage := map[string]int{}
	probability := 0
	for _, l := range leads {
		byStage[l.Stage]++
		probability += l.Probability
	}

	stats := &models.LeadStats{
		Total:          len(leads),
		Qualified:      byStage["Qualified"],
		ToursScheduled: byStage["Tour"],
		Signed:         byStage["Signed"],
	}
	stats.QualifiedShare = percent(stats.Qualified, stats.Total)
	if stats.Total > 0 {
		stats.AverageProbability = math.Round(float64(probability)/float64(stats.Total)*10) / 10
	}
	for _, stage := range LeadStages {
		stats.Pipeline = append(stats.Pipeline, models.PipelineStage{Stage: stage, Count: byStage[stage]})
	}
	return stats, nil
}

// StageAffordance maps a pipeline stage to its badge variant.
func StageAffordance(stage string) models.Affordance {
	switch stage {
	case "Qualified":
		return models.AffordanceSecondary
	case "Tour", "Signed":
		return models.AffordanceDefault
	default:
		return models.AffordanceOutline
	}
}
