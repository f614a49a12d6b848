package httperr

import (
	"fmt"
	"net/http"
	"testing"
)

func TestIsBusiness(t *testing.T) {
	err := ErrConflict("slot_already_booked", "This time slot is already booked")

	if !IsBusiness(err, "slot_already_booked") {
		t.Error("IsBusiness failed to match code")
	}
	if IsBusiness(err, "other_code") {
		t.Error("IsBusiness matched wrong code")
	}
	if IsBusiness(fmt.Errorf("plain"), "slot_already_booked") {
		t.Error("IsBusiness matched a non-business error")
	}

	// matches through wrapping
	wrapped := fmt.Errorf("booking: %w", err)
	if !IsBusiness(wrapped, "slot_already_booked") {
		t.Error("IsBusiness failed on wrapped error")
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindInvalidState, http.StatusBadRequest},
		{KindConflict, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindPermission, http.StatusForbidden},
		{KindUnauthorized, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		if got := statusFor(tc.kind); got != tc.want {
			t.Errorf("statusFor(%d) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestBusinessMessage(t *testing.T) {
	err := ErrNotFound("appointment_not_found", "Appointment not found")

	be, ok := AsBusiness(err)
	if !ok {
		t.Fatal("AsBusiness failed")
	}
	if be.Message != "Appointment not found" {
		t.Errorf("message = %q", be.Message)
	}
	if be.Error() != "appointment_not_found" {
		t.Errorf("Error() = %q", be.Error())
	}
}
