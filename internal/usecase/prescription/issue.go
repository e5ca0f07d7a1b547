package prescription

import (
	"context"

	"github.com/google/uuid"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/audit"
	domain "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/domain/prescription"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type MedicineLine struct {
	Name         string
	Dosage       string
	Instructions string
}

type IssuePrescriptionInput struct {
	PatientID     uuid.UUID
	DoctorID      uuid.UUID
	AppointmentID uuid.UUID

	Medicines []MedicineLine
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type IssuePrescription struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewIssuePrescription(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *IssuePrescription {
	return &IssuePrescription{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *IssuePrescription) Execute(
	ctx context.Context,
	in IssuePrescriptionInput,
) (*models.Prescription, error) {

	p := buildPrescription(in)

	if err := domain.ValidateMedicines(p.Medicines); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.DoctorID,
		Action:   audit.ActionPrescriptionIssued,
		Entity:   "prescription",
		EntityID: &p.ID,
	})

	return p, nil
}

// buildPrescription is shared with the correction flow, which issues
// the successor from the same input shape.
func buildPrescription(in IssuePrescriptionInput) *models.Prescription {
	id := uuid.New()

	medicines := make([]models.PrescriptionMedicine, 0, len(in.Medicines))
	for i, line := range in.Medicines {
		medicines = append(medicines, models.PrescriptionMedicine{
			ID:             uuid.New(),
			PrescriptionID: id,
			Name:           line.Name,
			Dosage:         line.Dosage,
			Instructions:   line.Instructions,
			Position:       i,
		})
	}

	return &models.Prescription{
		ID:            id,
		PatientID:     in.PatientID,
		DoctorID:      in.DoctorID,
		AppointmentID: in.AppointmentID,
		Medicines:     medicines,
		Notes:         in.Notes,
		IssuedAt:      timezone.Now(),
	}
}
