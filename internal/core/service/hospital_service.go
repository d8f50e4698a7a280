package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lifesource/lifesource-api/internal/core/domain"
	"github.com/lifesource/lifesource-api/internal/core/ports"
)

const hospitalListLimit = 200

// HospitalService implements hospital registration and verification.
type HospitalService struct {
	repo   ports.HospitalRepository
	logger zerolog.Logger
}

func NewHospitalService(repo ports.HospitalRepository, logger zerolog.Logger) *HospitalService {
	return &HospitalService{repo: repo, logger: logger}
}

// Create registers a hospital. New hospitals start unverified until an admin
// verifies them.
func (s *HospitalService) Create(ctx context.Context, input ports.CreateHospitalInput) (*domain.Hospital, error) {
	now := time.Now().UTC()
	hospital := &domain.Hospital{
		Name:          input.Name,
		Address:       input.Address,
		Coordinates:   input.Coordinates,
		ContactPhone:  input.ContactPhone,
		DailyCapacity: input.DailyCapacity,
		Verified:      false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, hospital)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create hospital")
		return nil, err
	}

	s.logger.Info().Str("hospital_id", created.ID).Str("name", created.Name).Msg("hospital created")
	return created, nil
}

func (s *HospitalService) List(ctx context.Context) ([]*domain.Hospital, error) {
	return s.repo.List(ctx, hospitalListLimit)
}

// Verify marks a hospital as verified.
func (s *HospitalService) Verify(ctx context.Context, id string) (*domain.Hospital, error) {
	hospital, err := s.repo.Verify(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("hospital_id", id).Msg("hospital verified")
	return hospital, nil
}
