package ports

import (
	"context"
	"time"

	"github.com/lifesource/lifesource-api/internal/core/domain"
)

// CreateAppointmentInput carries the data needed to book a donation slot.
type CreateAppointmentInput struct {
	DonorID    string
	HospitalID string
	Date       time.Time
}

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	// ForDonor returns the donor's appointments sorted by date descending.
	ForDonor(ctx context.Context, donorID string) ([]*domain.Appointment, error)
	// ForHospital returns the hospital's appointments sorted by date descending.
	ForHospital(ctx context.Context, hospitalID string) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
}

// AppointmentService defines use-case operations for appointments.
type AppointmentService interface {
	Create(ctx context.Context, input CreateAppointmentInput) (*domain.Appointment, error)
	ForDonor(ctx context.Context, donorID string) ([]*domain.Appointment, error)
	ForHospital(ctx context.Context, hospitalID string) ([]*domain.Appointment, error)
	// UpdateStatus applies the appointment state machine; invalid moves fail
	// with domain.ErrInvalidTransition.
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
}
