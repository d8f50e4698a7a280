package domain

import (
	"strings"
	"time"
)

// Account roles. Every allow-list in the codebase references these constants
// so the role enumeration lives in exactly one place.
const (
	RoleAdmin     = "admin"
	RoleHospital  = "hospital"
	RoleDonor     = "donor"
	RoleRecipient = "recipient"
)

// SelfServiceRoles are the only roles a self-service signup may request.
// Admin and hospital accounts are created out-of-band (seed CLI).
var SelfServiceRoles = []string{RoleDonor, RoleRecipient}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleHospital, RoleDonor, RoleRecipient:
		return true
	}
	return false
}

// SelfServiceRole reports whether role may be requested on signup.
func SelfServiceRole(role string) bool {
	for _, r := range SelfServiceRoles {
		if r == role {
			return true
		}
	}
	return false
}

// NormalizeEmail lowercases and trims an email so lookups and the unique
// index agree on a canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// User models a registered account. PasswordHash is never serialized.
type User struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	Role           string     `json:"role"`
	BloodType      string     `json:"blood_type,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Location       string     `json:"location,omitempty"`
	LastDonationAt *time.Time `json:"last_donation_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TokenClaims is the decoded identity carried by a session token.
type TokenClaims struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
