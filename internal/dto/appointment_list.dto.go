package dto

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentListDTO struct {
	ID                   uuid.UUID `json:"id"`
	SequenceCode         string    `json:"sequence_code"`
	PatientID            uuid.UUID `json:"patient_id"`
	PatientName          string    `json:"patient_name"`
	DoctorID             uuid.UUID `json:"doctor_id"`
	DoctorName           string    `json:"doctor_name"`
	DoctorSpecialization string    `json:"doctor_specialization"`
	Date                 time.Time `json:"date"`
	TimeSlot             string    `json:"time_slot"`
	Status               string    `json:"status"`
}
