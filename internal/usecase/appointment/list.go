package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/domain/appointment"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/dto"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

// Execute lists live appointments. A non-nil patientID scopes the list
// to that patient (patients only ever see their own bookings).
func (uc *ListAppointments) Execute(
	ctx context.Context,
	patientID *uuid.UUID,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointments(ctx, patientID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, toListDTO(ap))
	}

	return out, nil
}

func toListDTO(ap models.Appointment) dto.AppointmentListDTO {
	return dto.AppointmentListDTO{
		ID:                   ap.ID,
		SequenceCode:         ap.SequenceCode,
		PatientID:            ap.PatientID,
		PatientName:          ap.PatientName,
		DoctorID:             ap.DoctorID,
		DoctorName:           ap.DoctorName,
		DoctorSpecialization: ap.DoctorSpecialization,
		Date:                 ap.Date,
		TimeSlot:             ap.TimeSlot,
		Status:               ap.Status,
	}
}
