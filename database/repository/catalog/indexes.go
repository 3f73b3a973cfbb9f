// FILE: database/repository/catalog/indexes.go
package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the lookup indexes on the catalog collections.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uniqueID := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_id"),
	}

	plan := map[string][]mongo.IndexModel{
		BookingsCollection: {
			uniqueID,
			// Day views filter on optional date, then on time bounds.
			{
				Keys:    bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}, {Key: "endTime", Value: 1}},
				Options: options.Index().SetName("date_start_end_idx"),
			},
		},
		MembersCollection: {
			uniqueID,
			{
				Keys:    bson.D{{Key: "plan", Value: 1}, {Key: "status", Value: 1}},
				Options: options.Index().SetName("plan_status_idx"),
			},
		},
		LeadsCollection: {
			uniqueID,
			{
				Keys:    bson.D{{Key: "stage", Value: 1}},
				Options: options.Index().SetName("stage_idx"),
			},
		},
		InvoicesCollection: {
			uniqueID,
			{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "dueDate", Value: 1}},
				Options: options.Index().SetName("status_due_idx"),
			},
		},
		WorkspacesCollection: {
			uniqueID,
			{
				Keys:    bson.D{{Key: "type", Value: 1}, {Key: "status", Value: 1}},
				Options: options.Index().SetName("type_status_idx"),
			},
		},
	}

	for name, indexModels := range plan {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexModels); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}
	return nil
}
