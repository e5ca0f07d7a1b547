package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Human-readable booking code (APPnnnn). Never recycled, not even
	// when the appointment is rejected.
	SequenceCode string `gorm:"size:10;uniqueIndex;not null" json:"sequence_code"`

	PatientID uuid.UUID `gorm:"type:uuid;index;not null" json:"patient_id"`
	Patient   Patient   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	DoctorID uuid.UUID `gorm:"type:uuid;index;not null" json:"doctor_id"`

	// Captured at booking time, not live-joined.
	DoctorName           string `gorm:"size:100" json:"doctor_name"`
	DoctorSpecialization string `gorm:"size:100" json:"doctor_specialization"`

	// Contact snapshot, editable independently of the patient record.
	PatientName string `gorm:"size:100;not null" json:"patient_name"`
	Address     string `gorm:"size:255" json:"address"`
	NIC         string `gorm:"size:20" json:"nic"`
	Phone       string `gorm:"size:20" json:"phone"`
	Email       string `gorm:"size:100" json:"email"`

	Date     time.Time `json:"date"`
	TimeSlot string    `gorm:"size:20" json:"time_slot"`

	Status string `gorm:"size:20;default:'Pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RejectedAppointment is the immutable archive copy of an appointment
// that was rejected. Written exactly once, inside the same transaction
// that deletes the live row.
type RejectedAppointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Identity of the live appointment this record replaced.
	AppointmentID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	SequenceCode  string    `gorm:"size:10;not null" json:"sequence_code"`

	PatientID uuid.UUID `gorm:"type:uuid;index;not null" json:"patient_id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;index;not null" json:"doctor_id"`

	DoctorName           string `gorm:"size:100" json:"doctor_name"`
	DoctorSpecialization string `gorm:"size:100" json:"doctor_specialization"`

	PatientName string `gorm:"size:100" json:"patient_name"`
	Address     string `gorm:"size:255" json:"address"`
	NIC         string `gorm:"size:20" json:"nic"`
	Phone       string `gorm:"size:20" json:"phone"`
	Email       string `gorm:"size:100" json:"email"`

	Date     time.Time `json:"date"`
	TimeSlot string    `gorm:"size:20" json:"time_slot"`

	Status          string    `gorm:"size:20;default:'Rejected'" json:"status"`
	RejectionReason string    `gorm:"size:255;not null" json:"rejection_reason"`
	RejectedAt      time.Time `json:"rejected_at"`

	CreatedAt time.Time `json:"created_at"`
}
