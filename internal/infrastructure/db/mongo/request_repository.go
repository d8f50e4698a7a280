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

const collectionRequests = "blood_requests"

// RequestRepository implements ports.RequestRepository on MongoDB.
type RequestRepository struct {
	col *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{col: db.Collection(collectionRequests)}
}

type requestDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	RecipientID string             `bson:"recipient_id"`
	BloodType   string             `bson:"blood_type"`
	Quantity    int                `bson:"quantity"`
	Urgency     string             `bson:"urgency"`
	HospitalID  string             `bson:"hospital_id,omitempty"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d requestDoc) toDomain() *domain.BloodRequest {
	return &domain.BloodRequest{
		ID:          d.ID.Hex(),
		RecipientID: d.RecipientID,
		BloodType:   d.BloodType,
		Quantity:    d.Quantity,
		Urgency:     d.Urgency,
		HospitalID:  d.HospitalID,
		Status:      domain.RequestStatus(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.BloodRequest) (*domain.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := requestDoc{
		RecipientID: req.RecipientID,
		BloodType:   req.BloodType,
		Quantity:    req.Quantity,
		Urgency:     req.Urgency,
		HospitalID:  req.HospitalID,
		Status:      string(req.Status),
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   req.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert blood request: %w", err)
	}

	created := *req
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id string) (*domain.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	var doc requestDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find blood request: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RequestRepository) ForRecipient(ctx context.Context, recipientID string) ([]*domain.BloodRequest, error) {
	return r.find(ctx, bson.M{"recipient_id": recipientID})
}

func (r *RequestRepository) PendingForHospital(ctx context.Context, hospitalID string) ([]*domain.BloodRequest, error) {
	return r.find(ctx, bson.M{"hospital_id": hospitalID, "status": string(domain.RequestPending)})
}

func (r *RequestRepository) find(ctx context.Context, filter bson.M) ([]*domain.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list blood requests: %w", err)
	}
	defer cur.Close(ctx)

	var requests []*domain.BloodRequest
	for cur.Next(ctx) {
		var doc requestDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode blood request: %w", err)
		}
		requests = append(requests, doc.toDomain())
	}
	return requests, cur.Err()
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	update := bson.M{"$set": bson.M{"status": string(status), "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc requestDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("update blood request status: %w", err)
	}
	return doc.toDomain(), nil
}
