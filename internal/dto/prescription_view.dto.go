package dto

import (
	"time"

	"github.com/google/uuid"
)

type MedicineLineDTO struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Instructions string `json:"instructions"`
}

type PrescriptionViewDTO struct {
	ID            uuid.UUID  `json:"id"`
	PatientID     uuid.UUID  `json:"patient_id"`
	DoctorID      uuid.UUID  `json:"doctor_id"`
	AppointmentID uuid.UUID  `json:"appointment_id"`
	PredecessorID *uuid.UUID `json:"predecessor_id"`

	// Denormalized for display; sourced from the directory at read time.
	PatientName          string `json:"patient_name"`
	DoctorName           string `json:"doctor_name"`
	DoctorSpecialization string `json:"doctor_specialization"`

	Medicines []MedicineLineDTO `json:"medicines"`
	Notes     string            `json:"notes"`
	IssuedAt  time.Time         `json:"issued_at"`

	IsVoided   bool   `json:"is_voided"`
	VoidReason string `json:"void_reason"`
}
