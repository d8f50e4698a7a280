package domain

import "errors"

// Auth errors. ErrInvalidCredentials intentionally covers both "no such
// user" and "wrong password" so login failures do not reveal which emails
// are registered.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrForbiddenRole      = errors.New("role not allowed for self-signup")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")
)

// Resource errors.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrHospitalNotFound    = errors.New("hospital not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrRequestNotFound     = errors.New("blood request not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
)
