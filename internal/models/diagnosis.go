package models

import (
	"time"

	"github.com/google/uuid"
)

type Diagnosis struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	AppointmentID uuid.UUID `gorm:"type:uuid;index;not null" json:"appointment_id"`
	PatientID     uuid.UUID `gorm:"type:uuid;index;not null" json:"patient_id"`
	DoctorID      uuid.UUID `gorm:"type:uuid;index;not null" json:"doctor_id"`

	// Symptom labels as entered by the doctor; free text, any
	// punctuation allowed.
	Symptoms       []string `gorm:"serializer:json" json:"symptoms"`
	AssumedIllness string   `gorm:"size:255" json:"assumed_illness"`
	Description    string   `gorm:"size:1000" json:"description"`
	Notes          string   `gorm:"size:500" json:"notes"`

	Status string `gorm:"size:20;default:'Pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
