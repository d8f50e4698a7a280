package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"Alice@Example.COM":    "alice@example.com",
		"  bob@example.com  ":  "bob@example.com",
		"carol@example.com":    "carol@example.com",
		"\tDAVE@EXAMPLE.COM\n": "dave@example.com",
	}
	for in, want := range cases {
		if got := NormalizeEmail(in); got != want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSelfServiceRole(t *testing.T) {
	for _, role := range []string{RoleDonor, RoleRecipient} {
		if !SelfServiceRole(role) {
			t.Errorf("expected %q to be self-service", role)
		}
	}
	for _, role := range []string{RoleAdmin, RoleHospital, "superuser", ""} {
		if SelfServiceRole(role) {
			t.Errorf("expected %q to be rejected", role)
		}
	}
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	u := User{ID: "user_1", Email: "a@x.com", PasswordHash: "$2a$10$hash"}

	raw, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "hash") {
		t.Fatalf("password hash leaked into JSON: %s", raw)
	}
}

func TestAppointmentTransitions(t *testing.T) {
	valid := []struct{ from, to AppointmentStatus }{
		{AppointmentPending, AppointmentConfirmed},
		{AppointmentPending, AppointmentCancelled},
		{AppointmentConfirmed, AppointmentCompleted},
		{AppointmentConfirmed, AppointmentCancelled},
	}
	for _, tc := range valid {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	invalid := []struct{ from, to AppointmentStatus }{
		{AppointmentPending, AppointmentCompleted},
		{AppointmentCancelled, AppointmentConfirmed},
		{AppointmentCompleted, AppointmentCancelled},
		{AppointmentConfirmed, AppointmentPending},
	}
	for _, tc := range invalid {
		if tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestRequestTransitions(t *testing.T) {
	valid := []struct{ from, to RequestStatus }{
		{RequestPending, RequestAccepted},
		{RequestPending, RequestCancelled},
		{RequestAccepted, RequestFulfilled},
		{RequestAccepted, RequestCancelled},
	}
	for _, tc := range valid {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	invalid := []struct{ from, to RequestStatus }{
		{RequestPending, RequestFulfilled},
		{RequestFulfilled, RequestCancelled},
		{RequestCancelled, RequestAccepted},
	}
	for _, tc := range invalid {
		if tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}
