package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/campusbook/appointment-scheduler/internal/models"
)

// ErrNotFound is returned by repository reads when the record is absent,
// regardless of the backing store.
var ErrNotFound = errors.New("record not found")

// AppointmentQuery narrows ListAppointments; exactly one of StudentID or
// ProfessorID is set, depending on the caller's role.
type AppointmentQuery struct {
	StudentID   *uuid.UUID
	ProfessorID *uuid.UUID
	Status      Status
}

// Repository is the storage contract of the booking engine.
//
// InTransaction is the unit of work: the callback receives a Repository bound
// to one transaction, and every mutation inside it commits or rolls back as a
// whole. ForUpdate reads take a row lock so concurrent bookings of the same
// slot serialize and the loser observes IsBooked already set.
type Repository interface {
	InTransaction(ctx context.Context, fn func(Repository) error) error

	// -------- Availability --------
	GetAvailability(ctx context.Context, id uuid.UUID) (*models.Availability, error)
	GetAvailabilityForUpdate(ctx context.Context, id uuid.UUID) (*models.Availability, error)
	SaveAvailability(ctx context.Context, av *models.Availability) error

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	GetAppointmentForUpdate(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	SaveAppointment(ctx context.Context, ap *models.Appointment) error

	// HasScheduledConflict reports whether the student already holds a
	// scheduled appointment at the exact (date, startTime) pair.
	HasScheduledConflict(ctx context.Context, studentID uuid.UUID, date time.Time, startTime string) (bool, error)

	ListAppointments(ctx context.Context, q AppointmentQuery) ([]models.Appointment, error)
}
