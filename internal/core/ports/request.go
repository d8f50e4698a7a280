package ports

import (
	"context"

	"github.com/lifesource/lifesource-api/internal/core/domain"
)

// CreateRequestInput carries the data needed to open a blood request.
type CreateRequestInput struct {
	RecipientID string
	BloodType   string
	Quantity    int
	Urgency     string
	HospitalID  string
}

// RequestRepository defines persistence operations for blood requests.
type RequestRepository interface {
	Create(ctx context.Context, r *domain.BloodRequest) (*domain.BloodRequest, error)
	FindByID(ctx context.Context, id string) (*domain.BloodRequest, error)
	// ForRecipient returns the recipient's requests sorted by creation time descending.
	ForRecipient(ctx context.Context, recipientID string) ([]*domain.BloodRequest, error)
	// PendingForHospital returns the hospital's pending requests sorted by
	// creation time descending.
	PendingForHospital(ctx context.Context, hospitalID string) ([]*domain.BloodRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.BloodRequest, error)
}

// RequestService defines use-case operations for blood requests.
type RequestService interface {
	Create(ctx context.Context, input CreateRequestInput) (*domain.BloodRequest, error)
	ForRecipient(ctx context.Context, recipientID string) ([]*domain.BloodRequest, error)
	PendingForHospital(ctx context.Context, hospitalID string) ([]*domain.BloodRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.BloodRequest, error)
}
