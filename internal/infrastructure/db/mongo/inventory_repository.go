package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifesource/lifesource-api/internal/core/domain"
)

const collectionBloodUnits = "blood_units"

// InventoryRepository implements ports.InventoryRepository on MongoDB.
type InventoryRepository struct {
	col *mongo.Collection
}

func NewInventoryRepository(db *mongo.Database) *InventoryRepository {
	return &InventoryRepository{col: db.Collection(collectionBloodUnits)}
}

type bloodUnitDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	HospitalID string             `bson:"hospital_id"`
	BloodType  string             `bson:"blood_type"`
	Units      int                `bson:"units"`
	Expiry     time.Time          `bson:"expiry"`
	Status     string             `bson:"status"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d bloodUnitDoc) toDomain() *domain.BloodUnit {
	return &domain.BloodUnit{
		ID:         d.ID.Hex(),
		HospitalID: d.HospitalID,
		BloodType:  d.BloodType,
		Units:      d.Units,
		Expiry:     d.Expiry,
		Status:     d.Status,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (r *InventoryRepository) Add(ctx context.Context, u *domain.BloodUnit) (*domain.BloodUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bloodUnitDoc{
		HospitalID: u.HospitalID,
		BloodType:  u.BloodType,
		Units:      u.Units,
		Expiry:     u.Expiry,
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert blood unit: %w", err)
	}

	created := *u
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// ByHospital returns the hospital's non-expired units sorted by expiry.
func (r *InventoryRepository) ByHospital(ctx context.Context, hospitalID string) ([]*domain.BloodUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"hospital_id": hospitalID,
		"status":      bson.M{"$ne": domain.UnitExpired},
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "expiry", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list blood units: %w", err)
	}
	defer cur.Close(ctx)

	var units []*domain.BloodUnit
	for cur.Next(ctx) {
		var doc bloodUnitDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode blood unit: %w", err)
		}
		units = append(units, doc.toDomain())
	}
	return units, cur.Err()
}
