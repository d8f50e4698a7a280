package domain

import "time"

// AppointmentStatus represents the lifecycle state of a donation appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

// appointmentTransitions defines the allowed state machine transitions.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:   {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed: {AppointmentCompleted, AppointmentCancelled},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment is a scheduled donation slot between a donor and a hospital.
type Appointment struct {
	ID         string            `json:"id" bson:"_id,omitempty"`
	DonorID    string            `json:"donor_id" bson:"donor_id"`
	HospitalID string            `json:"hospital_id" bson:"hospital_id"`
	Date       time.Time         `json:"date" bson:"date"`
	Status     AppointmentStatus `json:"status" bson:"status"`
	CreatedAt  time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at" bson:"updated_at"`
}
