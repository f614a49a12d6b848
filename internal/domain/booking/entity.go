package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/campusbook/appointment-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, by uuid.UUID, now time.Time, reason string) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledByID = &by
	ap.CancelledAt = &now
	ap.CancelReason = reason
	return nil
}

func SetStatus(ap *models.Appointment, next Status) error {
	if err := CanSetStatus(next); err != nil {
		return err
	}

	ap.Status = string(next)
	return nil
}

// Claim marks an availability as taken by the given student.
func Claim(av *models.Availability, studentID uuid.UUID) {
	av.IsBooked = true
	av.BookedByID = &studentID
}

// Release frees an availability so it shows up in available-slot queries
// again.
func Release(av *models.Availability) {
	av.IsBooked = false
	av.BookedByID = nil
}
