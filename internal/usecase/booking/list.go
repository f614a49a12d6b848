package booking

import (
	"context"

	domain "github.com/campusbook/appointment-scheduler/internal/domain/booking"
	"github.com/campusbook/appointment-scheduler/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns the principal's own appointments: students see what they
// booked, professors what was booked with them. An unknown status filter is
// ignored rather than rejected.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	p domain.Principal,
	statusFilter string,
) ([]dto.AppointmentView, error) {

	q := domain.AppointmentQuery{}
	if p.IsProfessor() {
		q.ProfessorID = &p.UserID
	} else {
		q.StudentID = &p.UserID
	}

	if domain.IsValidStatus(statusFilter) {
		q.Status = domain.Status(statusFilter)
	}

	aps, err := uc.repo.ListAppointments(ctx, q)
	if err != nil {
		return nil, err
	}

	return dto.NewAppointmentViews(aps), nil
}
