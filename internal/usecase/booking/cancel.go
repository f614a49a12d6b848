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
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute flips the appointment to cancelled and releases its slot in the
// same unit of work, so the slot is never left claimed by a dead appointment.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	p domain.Principal,
	appointmentID string,
	reason string,
) (*dto.AppointmentView, error) {

	id, err := uuid.Parse(appointmentID)
	if err != nil {
		return nil, httperr.ErrNotFound(
			"appointment_not_found",
			"Appointment not found",
		)
	}

	if len(reason) > maxNotesLen {
		return nil, httperr.ErrValidation(
			"cancel_reason_too_long",
			"Cancel reason must be 500 characters or less",
		)
	}

	err = uc.repo.InTransaction(ctx, func(tx domain.Repository) error {

		ap, err := tx.GetAppointmentForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return httperr.ErrNotFound(
					"appointment_not_found",
					"Appointment not found",
				)
			}
			return err
		}

		// Already-cancelled wins over the party check, so an outsider
		// poking a dead appointment sees the same answer a party would.
		if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
			return err
		}

		if !p.IsParty(ap) {
			return httperr.ErrPermission(
				"not_appointment_party",
				"You do not have permission to cancel this appointment",
			)
		}

		if err := domain.Cancel(ap, p.UserID, time.Now(), reason); err != nil {
			return err
		}

		av, err := tx.GetAvailabilityForUpdate(ctx, ap.AvailabilityID)
		if err != nil {
			return err
		}

		domain.Release(av)
		if err := tx.SaveAvailability(ctx, av); err != nil {
			return err
		}

		return tx.SaveAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.UserID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &id,
	})

	full, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	view := dto.NewAppointmentView(*full)
	return &view, nil
}
