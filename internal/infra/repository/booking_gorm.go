package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/campusbook/appointment-scheduler/internal/domain/booking"
	"github.com/campusbook/appointment-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// InTransaction runs fn against a repository bound to a single transaction.
// Row locks taken by the ForUpdate reads inside fn are held until commit or
// rollback, which serializes concurrent claims of the same slot.
func (r *BookingGormRepository) InTransaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) GetAvailability(
	ctx context.Context,
	id uuid.UUID,
) (*models.Availability, error) {

	var av models.Availability
	if err := r.db.WithContext(ctx).
		Preload("Professor").
		Where("id = ?", id).
		First(&av).Error; err != nil {
		return nil, translate(err)
	}
	return &av, nil
}

func (r *BookingGormRepository) GetAvailabilityForUpdate(
	ctx context.Context,
	id uuid.UUID,
) (*models.Availability, error) {

	var av models.Availability
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&av).Error; err != nil {
		return nil, translate(err)
	}
	return &av, nil
}

func (r *BookingGormRepository) SaveAvailability(
	ctx context.Context,
	av *models.Availability,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(av).Error
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Professor").
		Preload("Availability").
		Preload("CancelledBy").
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, translate(err)
	}
	return &ap, nil
}

func (r *BookingGormRepository) GetAppointmentForUpdate(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, translate(err)
	}
	return &ap, nil
}

func (r *BookingGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

func (r *BookingGormRepository) HasScheduledConflict(
	ctx context.Context,
	studentID uuid.UUID,
	date time.Time,
	startTime string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"student_id = ? AND date = ? AND start_time = ? AND status = ?",
			studentID, date, startTime, string(domain.StatusScheduled),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
	q domain.AppointmentQuery,
) ([]models.Appointment, error) {

	tx := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Professor").
		Preload("Availability").
		Preload("CancelledBy")

	switch {
	case q.StudentID != nil:
		tx = tx.Where("student_id = ?", *q.StudentID)
	case q.ProfessorID != nil:
		tx = tx.Where("professor_id = ?", *q.ProfessorID)
	}

	if q.Status != "" {
		tx = tx.Where("status = ?", string(q.Status))
	}

	var aps []models.Appointment
	if err := tx.
		Order("date ASC, start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
