package ports

import (
	"context"
	"time"

	"github.com/lifesource/lifesource-api/internal/core/domain"
)

// AddBloodUnitInput carries the data needed to register stored units.
type AddBloodUnitInput struct {
	HospitalID string
	BloodType  string
	Units      int
	Expiry     time.Time
}

// InventoryRepository defines persistence operations for blood units.
type InventoryRepository interface {
	Add(ctx context.Context, u *domain.BloodUnit) (*domain.BloodUnit, error)
	// ByHospital returns the hospital's non-expired units sorted by expiry ascending.
	ByHospital(ctx context.Context, hospitalID string) ([]*domain.BloodUnit, error)
}

// InventoryService defines use-case operations for blood-unit inventory.
type InventoryService interface {
	Add(ctx context.Context, input AddBloodUnitInput) (*domain.BloodUnit, error)
	ByHospital(ctx context.Context, hospitalID string) ([]*domain.BloodUnit, error)
}
