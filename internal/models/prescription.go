package models

import (
	"time"

	"github.com/google/uuid"
)

type Prescription struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	PatientID     uuid.UUID `gorm:"type:uuid;index;not null" json:"patient_id"`
	DoctorID      uuid.UUID `gorm:"type:uuid;index;not null" json:"doctor_id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;index" json:"appointment_id"`

	Medicines []PrescriptionMedicine `gorm:"constraint:OnDelete:CASCADE;" json:"medicines"`

	Notes    string    `gorm:"size:500" json:"notes"`
	IssuedAt time.Time `json:"issued_at"`

	IsVoided   bool   `gorm:"default:false;index" json:"is_voided"`
	VoidReason string `gorm:"size:255" json:"void_reason"`

	// Set only on a correction: points at the prescription this one
	// superseded. The chain is a singly-linked backward list.
	PredecessorID *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"predecessor_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PrescriptionMedicine struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PrescriptionID uuid.UUID `gorm:"type:uuid;index;not null" json:"prescription_id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Dosage       string `gorm:"size:100;not null" json:"dosage"`
	Instructions string `gorm:"size:255" json:"instructions"`

	Position int `json:"position"`
}
