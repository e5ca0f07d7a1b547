package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/audit"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/directory"
	domain "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/domain/appointment"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/sequence"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/timezone"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	PatientID uuid.UUID
	DoctorID  uuid.UUID

	PatientName string
	Address     string
	NIC         string
	Phone       string
	Email       string

	DoctorSpecialization string

	Date     string
	TimeSlot string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo      domain.Repository
	dir       directory.Directory
	allocator sequence.Allocator
	audit     *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	dir directory.Directory,
	allocator sequence.Allocator,
	auditDispatcher *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:      repo,
		dir:       dir,
		allocator: allocator,
		audit:     auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// All validation runs before the sequence allocator is touched, so
	// a failed booking never consumes a code.
	if err := validateBooking(in); err != nil {
		return nil, err
	}

	exists, err := uc.dir.PatientExists(ctx, in.PatientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	// Doctor name is captured at booking time; a later rename of the
	// doctor record does not rewrite history.
	var doctorName string
	if doc, err := uc.dir.GetDoctor(ctx, in.DoctorID); err == nil {
		doctorName = doc.Name
	} else if !directory.IsNotFound(err) {
		return nil, err
	}

	code, err := uc.allocator.Next(ctx)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ID:                   uuid.New(),
		SequenceCode:         code,
		PatientID:            in.PatientID,
		DoctorID:             in.DoctorID,
		DoctorName:           doctorName,
		DoctorSpecialization: in.DoctorSpecialization,
		PatientName:          in.PatientName,
		Address:              in.Address,
		NIC:                  in.NIC,
		Phone:                in.Phone,
		Email:                in.Email,
		Date:                 date,
		TimeSlot:             in.TimeSlot,
		Status:               string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.PatientID,
		Action:   audit.ActionAppointmentBooked,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"sequence_code": code},
	})

	return ap, nil
}

func validateBooking(in BookAppointmentInput) error {
	required := []string{
		in.PatientName,
		in.Address,
		in.Phone,
		in.Email,
		in.DoctorSpecialization,
		in.Date,
		in.TimeSlot,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return httperr.ErrBusiness(httperr.CodeValidation)
		}
	}

	if in.PatientID == uuid.Nil || in.DoctorID == uuid.Nil {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}

	if !validators.IsEmailFormatValid(in.Email) {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}

	return nil
}
