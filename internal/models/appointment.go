package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment is a student's claim on an Availability slot. Rows are never
// deleted; the lifecycle is carried entirely by Status.
type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	StudentID uuid.UUID `gorm:"type:uuid;index;not null" json:"studentId"`
	Student   User      `gorm:"foreignKey:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"student"`

	ProfessorID uuid.UUID `gorm:"type:uuid;index;not null" json:"professorId"`
	Professor   User      `gorm:"foreignKey:ProfessorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"professor"`

	AvailabilityID uuid.UUID    `gorm:"type:uuid;index;not null" json:"availabilityId"`
	Availability   Availability `gorm:"foreignKey:AvailabilityID" json:"availability"`

	// Copied from the availability at booking time so the appointment stays
	// intact even if the slot is later edited.
	Date      time.Time `gorm:"not null" json:"date"`
	StartTime string    `gorm:"size:5;not null" json:"startTime"`
	EndTime   string    `gorm:"size:5;not null" json:"endTime"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`
	Notes  string `gorm:"size:500" json:"notes"`

	CancelledByID *uuid.UUID `gorm:"type:uuid" json:"cancelledById"`
	CancelledBy   *User      `gorm:"foreignKey:CancelledByID" json:"cancelledBy,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt"`
	CancelReason  string     `gorm:"size:500" json:"cancelReason"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
