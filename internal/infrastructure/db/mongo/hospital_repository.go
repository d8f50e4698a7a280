package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifesource/lifesource-api/internal/core/domain"
)

const collectionHospitals = "hospitals"

// HospitalRepository implements ports.HospitalRepository on MongoDB.
type HospitalRepository struct {
	col *mongo.Collection
}

func NewHospitalRepository(db *mongo.Database) *HospitalRepository {
	return &HospitalRepository{col: db.Collection(collectionHospitals)}
}

type hospitalDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Address       string             `bson:"address,omitempty"`
	Coordinates   []float64          `bson:"coordinates,omitempty"`
	Verified      bool               `bson:"verified"`
	ContactPhone  string             `bson:"contact_phone,omitempty"`
	DailyCapacity int                `bson:"daily_capacity"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (d hospitalDoc) toDomain() *domain.Hospital {
	return &domain.Hospital{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Address:       d.Address,
		Coordinates:   d.Coordinates,
		Verified:      d.Verified,
		ContactPhone:  d.ContactPhone,
		DailyCapacity: d.DailyCapacity,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (r *HospitalRepository) Create(ctx context.Context, h *domain.Hospital) (*domain.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := hospitalDoc{
		Name:          h.Name,
		Address:       h.Address,
		Coordinates:   h.Coordinates,
		Verified:      h.Verified,
		ContactPhone:  h.ContactPhone,
		DailyCapacity: h.DailyCapacity,
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert hospital: %w", err)
	}

	created := *h
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *HospitalRepository) List(ctx context.Context, limit int) ([]*domain.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	defer cur.Close(ctx)

	var hospitals []*domain.Hospital
	for cur.Next(ctx) {
		var doc hospitalDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode hospital: %w", err)
		}
		hospitals = append(hospitals, doc.toDomain())
	}
	return hospitals, cur.Err()
}

// Verify sets verified=true and returns the updated document.
func (r *HospitalRepository) Verify(ctx context.Context, id string) (*domain.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrHospitalNotFound
	}

	update := bson.M{"$set": bson.M{"verified": true, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc hospitalDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHospitalNotFound
		}
		return nil, fmt.Errorf("verify hospital: %w", err)
	}
	return doc.toDomain(), nil
}
