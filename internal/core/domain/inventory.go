package domain

import "time"

// Blood unit inventory states.
const (
	UnitAvailable = "available"
	UnitReserved  = "reserved"
	UnitUsed      = "used"
	UnitExpired   = "expired"
)

// BloodUnit is a batch of stored blood units held by a hospital.
type BloodUnit struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	HospitalID string    `json:"hospital_id" bson:"hospital_id"`
	BloodType  string    `json:"blood_type" bson:"blood_type"`
	Units      int       `json:"units" bson:"units"`
	Expiry     time.Time `json:"expiry" bson:"expiry"`
	Status     string    `json:"status" bson:"status"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
