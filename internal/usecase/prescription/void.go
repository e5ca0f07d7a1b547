package prescription

import (
	"context"

	"github.com/google/uuid"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/audit"
	domain "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/domain/prescription"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

type VoidPrescription struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewVoidPrescription(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *VoidPrescription {
	return &VoidPrescription{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute marks the prescription voided. Voiding twice is idempotent:
// the reason is updated and the call succeeds.
func (uc *VoidPrescription) Execute(
	ctx context.Context,
	actorID uuid.UUID,
	id uuid.UUID,
	reason string,
) (*models.Prescription, error) {

	p, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	domain.Void(p, reason)

	if err := uc.repo.UpdateVoidState(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   audit.ActionPrescriptionVoided,
		Entity:   "prescription",
		EntityID: &p.ID,
		Metadata: map[string]any{"reason": p.VoidReason},
	})

	return p, nil
}
