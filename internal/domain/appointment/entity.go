package appointment

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Advance(ap *models.Appointment, raw string) error {
	status, err := ParseStatus(raw)
	if err != nil {
		return err
	}

	ap.Status = string(status)
	return nil
}

// SnapshotRejection builds the immutable archive record for a rejected
// appointment. The caller persists it and deletes the live row in one
// transaction.
func SnapshotRejection(
	ap *models.Appointment,
	reason string,
	now time.Time,
) (*models.RejectedAppointment, error) {

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	return &models.RejectedAppointment{
		ID:                   uuid.New(),
		AppointmentID:        ap.ID,
		SequenceCode:         ap.SequenceCode,
		PatientID:            ap.PatientID,
		DoctorID:             ap.DoctorID,
		DoctorName:           ap.DoctorName,
		DoctorSpecialization: ap.DoctorSpecialization,
		PatientName:          ap.PatientName,
		Address:              ap.Address,
		NIC:                  ap.NIC,
		Phone:                ap.Phone,
		Email:                ap.Email,
		Date:                 ap.Date,
		TimeSlot:             ap.TimeSlot,
		Status:               StatusRejected,
		RejectionReason:      reason,
		RejectedAt:           now,
	}, nil
}
