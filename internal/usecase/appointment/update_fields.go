package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/audit"
	domain "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/domain/appointment"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// Patch semantics: nil pointers leave the stored value alone, and blank
// strings are ignored rather than clearing the field — contact fields
// can be corrected but never emptied through this path. Status, when
// present, must be inside the closed enumeration.
type UpdateAppointmentInput struct {
	PatientName          *string
	Address              *string
	NIC                  *string
	Phone                *string
	Email                *string
	DoctorSpecialization *string
	Date                 *string
	TimeSlot             *string
	Status               *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointmentFields struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointmentFields(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *UpdateAppointmentFields {
	return &UpdateAppointmentFields{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *UpdateAppointmentFields) Execute(
	ctx context.Context,
	actorID uuid.UUID,
	id uuid.UUID,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	// Validate everything before touching the record.
	if in.Status != nil {
		if _, err := domain.ParseStatus(*in.Status); err != nil {
			return nil, err
		}
	}

	if in.Date != nil {
		parsed, err := timezone.ParseDate(*in.Date)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeValidation)
		}
		ap.Date = parsed
	}

	applyString := func(dst *string, src *string) {
		if src != nil && strings.TrimSpace(*src) != "" {
			*dst = strings.TrimSpace(*src)
		}
	}

	applyString(&ap.PatientName, in.PatientName)
	applyString(&ap.Address, in.Address)
	applyString(&ap.NIC, in.NIC)
	applyString(&ap.Phone, in.Phone)
	applyString(&ap.Email, in.Email)
	applyString(&ap.DoctorSpecialization, in.DoctorSpecialization)
	applyString(&ap.TimeSlot, in.TimeSlot)

	if in.Status != nil {
		ap.Status = *in.Status
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   audit.ActionAppointmentUpdated,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
