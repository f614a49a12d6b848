package booking

import (
	"github.com/google/uuid"

	"github.com/campusbook/appointment-scheduler/internal/models"
)

// Principal is the authenticated identity acting on the booking engine. It is
// always passed explicitly; the engine never reads ambient request state.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

func (p Principal) IsStudent() bool {
	return p.Role == models.RoleStudent
}

func (p Principal) IsProfessor() bool {
	return p.Role == models.RoleProfessor
}

// IsParty reports whether the principal is the booking student or the owning
// professor of the appointment, the only identities allowed to view or
// cancel it.
func (p Principal) IsParty(ap *models.Appointment) bool {
	return ap.StudentID == p.UserID || ap.ProfessorID == p.UserID
}

// OwnsAppointment reports whether the principal is the owning professor.
func (p Principal) OwnsAppointment(ap *models.Appointment) bool {
	return p.IsProfessor() && ap.ProfessorID == p.UserID
}
