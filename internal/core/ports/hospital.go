package ports

import (
	"context"

	"github.com/lifesource/lifesource-api/internal/core/domain"
)

// CreateHospitalInput carries the data needed to register a hospital.
type CreateHospitalInput struct {
	Name          string
	Address       string
	Coordinates   []float64 // [lng, lat]
	ContactPhone  string
	DailyCapacity int
}

// HospitalRepository defines persistence operations for hospitals.
type HospitalRepository interface {
	Create(ctx context.Context, h *domain.Hospital) (*domain.Hospital, error)
	List(ctx context.Context, limit int) ([]*domain.Hospital, error)
	// Verify marks the hospital as verified and returns the updated document.
	Verify(ctx context.Context, id string) (*domain.Hospital, error)
}

// HospitalService defines use-case operations for hospitals.
type HospitalService interface {
	Create(ctx context.Context, input CreateHospitalInput) (*domain.Hospital, error)
	List(ctx context.Context) ([]*domain.Hospital, error)
	Verify(ctx context.Context, id string) (*domain.Hospital, error)
}
