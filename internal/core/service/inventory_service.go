package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lifesource/lifesource-api/internal/core/domain"
	"github.com/lifesource/lifesource-api/internal/core/ports"
)

// InventoryService implements blood-unit inventory tracking.
type InventoryService struct {
	repo   ports.InventoryRepository
	logger zerolog.Logger
}

func NewInventoryService(repo ports.InventoryRepository, logger zerolog.Logger) *InventoryService {
	return &InventoryService{repo: repo, logger: logger}
}

// Add registers a batch of stored units as available.
func (s *InventoryService) Add(ctx context.Context, input ports.AddBloodUnitInput) (*domain.BloodUnit, error) {
	now := time.Now().UTC()
	unit := &domain.BloodUnit{
		HospitalID: input.HospitalID,
		BloodType:  input.BloodType,
		Units:      input.Units,
		Expiry:     input.Expiry,
		Status:     domain.UnitAvailable,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Add(ctx, unit)
	if err != nil {
		s.logger.Error().Err(err).Str("hospital_id", input.HospitalID).Msg("failed to add blood units")
		return nil, err
	}

	s.logger.Info().
		Str("unit_id", created.ID).
		Str("blood_type", created.BloodType).
		Int("units", created.Units).
		Msg("blood units added")
	return created, nil
}

func (s *InventoryService) ByHospital(ctx context.Context, hospitalID string) ([]*domain.BloodUnit, error) {
	return s.repo.ByHospital(ctx, hospitalID)
}
