package domain

import "time"

// RequestStatus represents the lifecycle state of a blood request.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestFulfilled RequestStatus = "fulfilled"
	RequestCancelled RequestStatus = "cancelled"
)

// Request urgency levels.
const (
	UrgencyLow      = "low"
	UrgencyMedium   = "medium"
	UrgencyHigh     = "high"
	UrgencyCritical = "critical"
)

// requestTransitions defines the allowed state machine transitions.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending:  {RequestAccepted, RequestCancelled},
	RequestAccepted: {RequestFulfilled, RequestCancelled},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BloodRequest is a recipient's request for blood units, optionally routed
// to a specific hospital.
type BloodRequest struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	RecipientID string        `json:"recipient_id" bson:"recipient_id"`
	BloodType   string        `json:"blood_type" bson:"blood_type"`
	Quantity    int           `json:"quantity" bson:"quantity"`
	Urgency     string        `json:"urgency" bson:"urgency"`
	HospitalID  string        `json:"hospital_id,omitempty" bson:"hospital_id,omitempty"`
	Status      RequestStatus `json:"status" bson:"status"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
