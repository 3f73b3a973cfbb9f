// File: database/repository/catalog/mongo.go
package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"workhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoCatalog struct {
	db *mongo.Database
}

// NewMongoCatalog constructs a read-only Catalog over db. Documents are returned in
// insertion order (ascending _id), which is the catalog order the resolver relies on.
func NewMongoCatalog(db *mongo.Database) Catalog {
	return &mongoCatalog{db: db}
}

func findAll[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", coll.Name(), err)
	}
	return out, nil
}

func (r *mongoCatalog) Bookings(ctx context.Context) ([]models.Booking, error) {
	raw, err := findAll[models.Booking](ctx, r.db.Collection(BookingsCollection))
	if err != nil {
		return nil, err
	}
	return NormalizeBookings(raw)
}

func (r *mongoCatalog) Members(ctx context.Context) ([]models.Member, error) {
	return findAll[models.Member](ctx, r.db.Collection(MembersCollection))
}

func (r *mongoCatalog) Leads(ctx context.Context) ([]models.Lead, error) {
	return findAll[models.Lead](ctx, r.db.Collection(LeadsCollection))
}

func (r *mongoCatalog) Invoices(ctx context.Context) ([]models.Invoice, error) {
	return findAll[models.Invoice](ctx, r.db.Collection(InvoicesCollection))
}

func (r *mongoCatalog) Workspaces(ctx context.Context) ([]models.Workspace, error) {
	return findAll[models.Workspace](ctx, r.db.Collection(WorkspacesCollection))
}

func (r *mongoCatalog) Revenue(ctx context.Context) ([]models.RevenuePoint, error) {
	return findAll[models.RevenuePoint](ctx, r.db.Collection(RevenueCollection))
}

func (r *mongoCatalog) Utilization(ctx context.Context) ([]models.UtilizationBucket, error) {
	return findAll[models.UtilizationBucket](ctx, r.db.Collection(UtilizationCollection))
}

func (r *mongoCatalog) Occupancy(ctx context.Context) ([]models.OccupancyPoint, error) {
	return findAll[models.OccupancyPoint](ctx, r.db.Collection(OccupancyCollection))
}

// LoadSeed replaces every catalog collection in db with the contents of seed.
// Only the seed program calls this; the server never writes.
func LoadSeed(ctx context.Context, db *mongo.Database, seed Seed) error {
	bookings, err := NormalizeBookings(seed.Bookings)
	if err != nil {
		return fmt.Errorf("invalid booking seed: %w", err)
	}

	batches := []struct {
		name string
		docs []interface{}
	}{
		{BookingsCollection, toDocs(bookings)},
		{MembersCollection, toDocs(seed.Members)},
		{LeadsCollection, toDocs(seed.Leads)},
		{InvoicesCollection, toDocs(seed.Invoices)},
		{WorkspacesCollection, toDocs(seed.Workspaces)},
		{RevenueCollection, toDocs(seed.Revenue)},
		{UtilizationCollection, toDocs(seed.Utilization)},
		{OccupancyCollection, toDocs(seed.Occupancy)},
	}

	for _, b := range batches {
		coll := db.Collection(b.name)
		if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("failed to clear %s: %w", b.name, err)
		}
		if len(b.docs) == 0 {
			continue
		}
		if _, err := coll.InsertMany(ctx, b.docs, options.InsertMany().SetOrdered(true)); err != nil {
			return fmt.Errorf("failed to insert %s: %w", b.name, err)
		}
	}
	return nil
}

func toDocs[T any](items []T) []interface{} {
	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}
	return docs
}
