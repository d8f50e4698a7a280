package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lifesource/lifesource-api/internal/core/domain"
	"github.com/lifesource/lifesource-api/internal/core/ports"
)

type stubAppointmentRepo struct {
	appointments map[string]*domain.Appointment
	next         int
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{appointments: make(map[string]*domain.Appointment)}
}

func (r *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	r.next++
	created := *a
	created.ID = fmt.Sprintf("appt_%d", r.next)
	r.appointments[created.ID] = &created
	return &created, nil
}

func (r *stubAppointmentRepo) FindByID(_ context.Context, id string) (*domain.Appointment, error) {
	if a, ok := r.appointments[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, domain.ErrAppointmentNotFound
}

func (r *stubAppointmentRepo) ForDonor(_ context.Context, donorID string) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range r.appointments {
		if a.DonorID == donorID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubAppointmentRepo) ForHospital(_ context.Context, hospitalID string) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range r.appointments {
		if a.HospitalID == hospitalID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubAppointmentRepo) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	a.Status = status
	clone := *a
	return &clone, nil
}

func TestAppointmentService_Create_StartsPending(t *testing.T) {
	svc := NewAppointmentService(newStubAppointmentRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateAppointmentInput{
		DonorID: "donor_1", HospitalID: "hosp_1", Date: time.Now().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != domain.AppointmentPending {
		t.Fatalf("expected pending, got %s", created.Status)
	}
	if created.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
}

func TestAppointmentService_UpdateStatus_ValidFlow(t *testing.T) {
	repo := newStubAppointmentRepo()
	svc := NewAppointmentService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateAppointmentInput{
		DonorID: "donor_1", HospitalID: "hosp_1", Date: time.Now(),
	})

	confirmed, err := svc.UpdateStatus(context.Background(), created.ID, domain.AppointmentConfirmed)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if confirmed.Status != domain.AppointmentConfirmed {
		t.Fatalf("expected confirmed, got %s", confirmed.Status)
	}

	completed, err := svc.UpdateStatus(context.Background(), created.ID, domain.AppointmentCompleted)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if completed.Status != domain.AppointmentCompleted {
		t.Fatalf("expected completed, got %s", completed.Status)
	}
}

func TestAppointmentService_UpdateStatus_InvalidTransition(t *testing.T) {
	repo := newStubAppointmentRepo()
	svc := NewAppointmentService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateAppointmentInput{
		DonorID: "donor_1", HospitalID: "hosp_1", Date: time.Now(),
	})

	// pending → completed skips confirmation.
	if _, err := svc.UpdateStatus(context.Background(), created.ID, domain.AppointmentCompleted); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	// cancelled is terminal.
	if _, err := svc.UpdateStatus(context.Background(), created.ID, domain.AppointmentCancelled); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), created.ID, domain.AppointmentConfirmed); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition after cancel, got %v", err)
	}
}

func TestAppointmentService_UpdateStatus_NotFound(t *testing.T) {
	svc := NewAppointmentService(newStubAppointmentRepo(), zerolog.Nop())

	if _, err := svc.UpdateStatus(context.Background(), "missing", domain.AppointmentConfirmed); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}
