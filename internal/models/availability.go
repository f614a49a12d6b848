package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Availability struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ProfessorID uuid.UUID `gorm:"type:uuid;index;not null" json:"professorId"`
	Professor   User      `gorm:"foreignKey:ProfessorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"professor"`

	Date      time.Time `gorm:"index;not null" json:"date"`
	StartTime string    `gorm:"size:5;not null" json:"startTime"`
	EndTime   string    `gorm:"size:5;not null" json:"endTime"`

	IsBooked   bool       `gorm:"default:false" json:"isBooked"`
	BookedByID *uuid.UUID `gorm:"type:uuid" json:"bookedById"`
	BookedBy   *User      `gorm:"foreignKey:BookedByID" json:"bookedBy,omitempty"`

	// Slot length in minutes.
	Duration int `gorm:"default:60" json:"duration"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Availability) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
