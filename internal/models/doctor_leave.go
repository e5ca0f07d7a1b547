package models

import (
	"time"

	"github.com/google/uuid"
)

type DoctorLeave struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	DoctorID uuid.UUID `gorm:"type:uuid;index;not null" json:"doctor_id"`

	LeaveType string `gorm:"size:20;not null" json:"leave_type"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	Reason string `gorm:"size:255" json:"reason"`
	Status string `gorm:"size:20;default:'Plan'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
