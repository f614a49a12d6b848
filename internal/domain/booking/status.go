package booking

import "github.com/campusbook/appointment-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusScheduled, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanCancel rejects re-cancelling; a completed appointment may still be
// cancelled, matching the professor's ability to undo a completion.
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrInvalidState(
			"already_cancelled",
			"Appointment is already cancelled",
		)
	}
	return nil
}

// CanSetStatus restricts the explicit status-update operation to the
// scheduled/completed pair; cancellation has its own operation.
func CanSetStatus(next Status) error {
	if next != StatusScheduled && next != StatusCompleted {
		return httperr.ErrValidation(
			"invalid_status",
			"Invalid status. Must be completed or scheduled",
		)
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
