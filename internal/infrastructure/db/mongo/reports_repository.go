package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lifesource/lifesource-api/internal/core/ports"
)

// ReportsRepository implements ports.ReportsRepository by counting the
// documents in each collection.
type ReportsRepository struct {
	db *mongo.Database
}

func NewReportsRepository(db *mongo.Database) *ReportsRepository {
	return &ReportsRepository{db: db}
}

func (r *ReportsRepository) Counts(ctx context.Context) (*ports.ReportCounts, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	counts := &ports.ReportCounts{}
	for _, c := range []struct {
		collection string
		target     *int64
	}{
		{collectionUsers, &counts.Users},
		{collectionHospitals, &counts.Hospitals},
		{collectionAppointments, &counts.Appointments},
		{collectionRequests, &counts.Requests},
		{collectionBloodUnits, &counts.BloodUnits},
	} {
		n, err := r.db.Collection(c.collection).CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", c.collection, err)
		}
		*c.target = n
	}
	return counts, nil
}
