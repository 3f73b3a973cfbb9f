// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"workhub/models"
)

// Catalog is the single read-only source every dashboard view derives from.
// Slices are returned in catalog order; callers own the returned copies.
type Catalog interface {
	Bookings(ctx context.Context) ([]models.Booking, error)
	Members(ctx context.Context) ([]models.Member, error)
	Leads(ctx context.Context) ([]models.Lead, error)
	Invoices(ctx context.Context) ([]models.Invoice, error)
	Workspaces(ctx context.Context) ([]models.Workspace, error)
	Revenue(ctx context.Context) ([]models.RevenuePoint, error)
	Utilization(ctx context.Context) ([]models.UtilizationBucket, error)
	Occupancy(ctx context.Context) ([]models.OccupancyPoint, error)
}

// Collection names shared by the mongo catalog and the seed program.
const (
	BookingsCollection    = "bookings"
	MembersCollection     = "members"
	LeadsCollection       = "leads"
	InvoicesCollection    = "invoices"
	WorkspacesCollection  = "workspaces"
	RevenueCollection     = "revenue"
	UtilizationCollection = "utilization"
	OccupancyCollection   = "occupancy"
)
