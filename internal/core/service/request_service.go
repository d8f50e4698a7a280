package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lifesource/lifesource-api/internal/core/domain"
	"github.com/lifesource/lifesource-api/internal/core/ports"
)

// RequestService implements blood request handling.
type RequestService struct {
	repo   ports.RequestRepository
	logger zerolog.Logger
}

func NewRequestService(repo ports.RequestRepository, logger zerolog.Logger) *RequestService {
	return &RequestService{repo: repo, logger: logger}
}

// Create opens a new blood request in the pending state.
func (s *RequestService) Create(ctx context.Context, input ports.CreateRequestInput) (*domain.BloodRequest, error) {
	urgency := input.Urgency
	if urgency == "" {
		urgency = domain.UrgencyMedium
	}

	now := time.Now().UTC()
	request := &domain.BloodRequest{
		RecipientID: input.RecipientID,
		BloodType:   input.BloodType,
		Quantity:    input.Quantity,
		Urgency:     urgency,
		HospitalID:  input.HospitalID,
		Status:      domain.RequestPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, request)
	if err != nil {
		s.logger.Error().Err(err).Str("recipient_id", input.RecipientID).Msg("failed to create blood request")
		return nil, err
	}

	s.logger.Info().
		Str("request_id", created.ID).
		Str("blood_type", created.BloodType).
		Str("urgency", created.Urgency).
		Msg("blood request created")
	return created, nil
}

func (s *RequestService) ForRecipient(ctx context.Context, recipientID string) ([]*domain.BloodRequest, error) {
	return s.repo.ForRecipient(ctx, recipientID)
}

func (s *RequestService) PendingForHospital(ctx context.Context, hospitalID string) ([]*domain.BloodRequest, error) {
	return s.repo.PendingForHospital(ctx, hospitalID)
}

// UpdateStatus applies the request state machine before persisting.
func (s *RequestService) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.BloodRequest, error) {
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
		Str("request_id", id).
		Str("status", string(status)).
		Msg("blood request status updated")
	return updated, nil
}
