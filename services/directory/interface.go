package directory

import (
	"context"

	catalogRepo "workhub/database/repository/catalog"
	"workhub/models"
)

// DirectoryService answers the members and leads views.
type DirectoryService interface {
	SearchMembers(ctx context.Context, f MemberFilter) ([]models.Member, error)
	MemberStats(ctx context.Context) (*models.MemberStats, error)
	SearchLeads(ctx context.Context, f LeadFilter) ([]models.Lead, error)
	LeadStats(ctx context.Context) (*models.LeadStats, error)
}

// DefaultDirectoryService implements DirectoryService over the catalog.
type DefaultDirectoryService struct {
	Catalog catalogRepo.Catalog
}

// MemberFilter narrows the member list. Empty fields match everything.
type MemberFilter struct {
	Query  string `form:"q"`
	Plan   string `form:"plan"`
	Status string `form:"status"`
}

// LeadFilter narrows the lead list. Empty fields match everything.
type LeadFilter struct {
	Query  string `form:"q"`
	Stage  string `form:"stage"`
	Source string `form:"source"`
}

// LeadStages is the pipeline order.
var LeadStages = []string{"Lead", "Qualified", "Tour", "Signed"}
