package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/campusbook/appointment-scheduler/internal/audit"
	domain "github.com/campusbook/appointment-scheduler/internal/domain/booking"
	"github.com/campusbook/appointment-scheduler/internal/dto"
	"github.com/campusbook/appointment-scheduler/internal/httperr"
)

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute moves an appointment between scheduled and completed. Only the
// owning professor may do this, and the availability is left untouched.
func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	p domain.Principal,
	appointmentID string,
	status string,
) (*dto.AppointmentView, error) {

	if err := domain.CanSetStatus(domain.Status(status)); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(appointmentID)
	if err != nil {
		return nil, httperr.ErrNotFound(
			"appointment_not_found",
			"Appointment not found",
		)
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrNotFound(
				"appointment_not_found",
				"Appointment not found",
			)
		}
		return nil, err
	}

	if !p.OwnsAppointment(ap) {
		return nil, httperr.ErrPermission(
			"not_appointment_professor",
			"Only the professor can update appointment status",
		)
	}

	if err := domain.SetStatus(ap, domain.Status(status)); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.UserID,
		Action:   "appointment_status_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": status},
	})

	view := dto.NewAppointmentView(*ap)
	return &view, nil
}
