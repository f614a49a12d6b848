package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/campusbook/appointment-scheduler/internal/audit"
	domain "github.com/campusbook/appointment-scheduler/internal/domain/booking"
	"github.com/campusbook/appointment-scheduler/internal/dto"
	"github.com/campusbook/appointment-scheduler/internal/httperr"
	"github.com/campusbook/appointment-scheduler/internal/models"
	"github.com/campusbook/appointment-scheduler/internal/timeutil"
)

const maxNotesLen = 500

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	AvailabilityID string
	Notes          string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute claims the availability and creates the appointment in one unit of
// work; a failure at any step leaves both records untouched.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	p domain.Principal,
	in BookInput,
) (*dto.AppointmentView, error) {

	availabilityID, err := uuid.Parse(in.AvailabilityID)
	if err != nil {
		return nil, httperr.ErrValidation(
			"invalid_availability_id",
			"Invalid availability ID format",
		)
	}

	if len(in.Notes) > maxNotesLen {
		return nil, httperr.ErrValidation(
			"notes_too_long",
			"Notes must be 500 characters or less",
		)
	}

	var created *models.Appointment

	err = uc.repo.InTransaction(ctx, func(tx domain.Repository) error {

		// The row lock here is what serializes concurrent bookings of the
		// same slot: the second caller blocks until the first commits, then
		// observes IsBooked and fails with a conflict.
		av, err := tx.GetAvailabilityForUpdate(ctx, availabilityID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return httperr.ErrNotFound(
					"availability_not_found",
					"Availability slot not found",
				)
			}
			return err
		}

		if av.IsBooked {
			return httperr.ErrConflict(
				"slot_already_booked",
				"This time slot is already booked",
			)
		}

		slotStart, err := timeutil.MergeDateTime(av.Date, av.StartTime)
		if err != nil || !slotStart.After(time.Now()) {
			return httperr.ErrInvalidState(
				"slot_not_in_future",
				"Cannot book past or current time slots",
			)
		}

		startOffset, err := timeutil.MinuteOffset(av.StartTime)
		if err != nil {
			return httperr.ErrInvalidState(
				"invalid_time_range",
				"End time must be after start time",
			)
		}
		endOffset, err := timeutil.MinuteOffset(av.EndTime)
		if err != nil || endOffset <= startOffset {
			return httperr.ErrInvalidState(
				"invalid_time_range",
				"End time must be after start time",
			)
		}

		// Slot-level conflict is handled above; this guards the student
		// against double-booking themselves across professors.
		conflict, err := tx.HasScheduledConflict(ctx, p.UserID, av.Date, av.StartTime)
		if err != nil {
			return err
		}
		if conflict {
			return httperr.ErrConflict(
				"student_time_conflict",
				"You already have an appointment at this time",
			)
		}

		ap := &models.Appointment{
			StudentID:      p.UserID,
			ProfessorID:    av.ProfessorID,
			AvailabilityID: av.ID,
			Date:           av.Date,
			StartTime:      av.StartTime,
			EndTime:        av.EndTime,
			Status:         string(domain.InitialStatus()),
			Notes:          in.Notes,
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		domain.Claim(av, p.UserID)
		if err := tx.SaveAvailability(ctx, av); err != nil {
			return err
		}

		created = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.UserID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	full, err := uc.repo.GetAppointment(ctx, created.ID)
	if err != nil {
		return nil, err
	}

	view := dto.NewAppointmentView(*full)
	return &view, nil
}
