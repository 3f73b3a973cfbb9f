package catalogRepo

import (
	"context"
	"fmt"
	"slices"

	"workhub/models"
)

type memoryCatalog struct {
	seed Seed
}

// NewMemoryCatalog builds an immutable catalog from seed. The seed is copied and its
// bookings normalized once; later edits to seed do not leak in.
func NewMemoryCatalog(seed Seed) (Catalog, error) {
	bookings, err := NormalizeBookings(seed.Bookings)
	if err != nil {
		return nil, fmt.Errorf("invalid booking seed: %w", err)
	}

	workspaces := make([]models.Workspace, len(seed.Workspaces))
	for i, w := range seed.Workspaces {
		w.Amenities = slices.Clone(w.Amenities)
		workspaces[i] = w
	}

	return &memoryCatalog{seed: Seed{
		Bookings:    bookings,
		Members:     slices.Clone(seed.Members),
		Leads:       slices.Clone(seed.Leads),
		Invoices:    slices.Clone(seed.Invoices),
		Workspaces:  workspaces,
		Revenue:     slices.Clone(seed.Revenue),
		Utilization: slices.Clone(seed.Utilization),
		Occupancy:   slices.Clone(seed.Occupancy),
	}}, nil
}

func (m *memoryCatalog) Bookings(ctx context.Context) ([]models.Booking, error) {
	return slices.Clone(m.seed.Bookings), nil
}

func (m *memoryCatalog) Members(ctx context.Context) ([]models.Member, error) {
	return slices.Clone(m.seed.Members), nil
}

func (m *memoryCatalog) Leads(ctx context.Context) ([]models.Lead, error) {
	return slices.Clone(m.seed.Leads), nil
}

func (m *memoryCatalog) Invoices(ctx context.Context) ([]models.Invoice, error) {
	return slices.Clone(m.seed.Invoices), nil
}

func (m *memoryCatalog) Workspaces(ctx context.Context) ([]models.Workspace, error) {
	out := make([]models.Workspace, len(m.seed.Workspaces))
	for i, w := range m.seed.Workspaces {
		w.Amenities = slices.Clone(w.Amenities)
		out[i] = w
	}
	return out, nil
}

func (m *memoryCatalog) Revenue(ctx context.Context) ([]models.RevenuePoint, error) {
	return slices.Clone(m.seed.Revenue), nil
}

func (m *memoryCatalog) Utilization(ctx context.Context) ([]models.UtilizationBucket, error) {
	return slices.Clone(m.seed.Utilization), nil
}

func (m *memoryCatalog) Occupancy(ctx context.Context) ([]models.OccupancyPoint, error) {
	return slices.Clone(m.seed.Occupancy), nil
}
