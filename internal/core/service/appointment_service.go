package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lifesource/lifesource-api/internal/core/domain"
	"github.com/lifesource/lifesource-api/internal/core/ports"
)

// AppointmentService implements donation appointment booking.
type AppointmentService struct {
	repo   ports.AppointmentRepository
	logger zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, logger: logger}
}

// Create books a new appointment in the pending state.
func (s *AppointmentService) Create(ctx context.Context, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
	now := time.Now().UTC()
	appointment := &domain.Appointment{
		DonorID:    input.DonorID,
		HospitalID: input.HospitalID,
		Date:       input.Date,
		Status:     domain.AppointmentPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Create(ctx, appointment)
	if err != nil {
		s.logger.Error().Err(err).Str("donor_id", input.DonorID).Msg("failed to create appointment")
		return nil, err
	}

	s.logger.Info().
		Str("appointment_id", created.ID).
		Str("donor_id", created.DonorID).
		Str("hospital_id", created.HospitalID).
		Msg("appointment created")
	return created, nil
}

func (s *AppointmentService) ForDonor(ctx context.Context, donorID string) ([]*domain.Appointment, error) {
	return s.repo.ForDonor(ctx, donorID)
}

func (s *AppointmentService) ForHospital(ctx context.Context, hospitalID string) ([]*domain.Appointment, error) {
	return s.repo.ForHospital(ctx, hospitalID)
}

// UpdateStatus applies the appointment state machine before persisting.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, current.Status, status)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("appointment_id", id).
		Str("status", string(status)).
		Msg("appointment status updated")
	return updated, nil
}
