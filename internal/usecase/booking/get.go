package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domain "github.com/campusbook/appointment-scheduler/internal/domain/booking"
	"github.com/campusbook/appointment-scheduler/internal/dto"
	"github.com/campusbook/appointment-scheduler/internal/httperr"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	p domain.Principal,
	appointmentID string,
) (*dto.AppointmentView, error) {

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

	if !p.IsParty(ap) {
		return nil, httperr.ErrPermission(
			"not_appointment_party",
			"You do not have permission to view this appointment",
		)
	}

	view := dto.NewAppointmentView(*ap)
	return &view, nil
}
