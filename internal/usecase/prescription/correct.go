package prescription

import (
	"context"

	"github.com/google/uuid"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/audit"
	domain "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/domain/prescription"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

// CorrectPrescription supersedes an issued prescription: the old one is
// voided with the fixed system reason (overwriting any manual reason)
// and a successor is created pointing back at it. Both changes commit
// together or not at all, and a prescription that already has a
// successor cannot be corrected again.
type CorrectPrescription struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCorrectPrescription(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CorrectPrescription {
	return &CorrectPrescription{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *CorrectPrescription) Execute(
	ctx context.Context,
	oldID uuid.UUID,
	in IssuePrescriptionInput,
) (*models.Prescription, error) {

	successor := buildPrescription(in)
	successor.PredecessorID = &oldID

	if err := domain.ValidateMedicines(successor.Medicines); err != nil {
		return nil, err
	}

	if err := uc.repo.CorrectionMove(ctx, oldID, successor); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.DoctorID,
		Action:   audit.ActionPrescriptionCorrected,
		Entity:   "prescription",
		EntityID: &successor.ID,
		Metadata: map[string]any{"predecessor_id": oldID.String()},
	})

	return successor, nil
}
