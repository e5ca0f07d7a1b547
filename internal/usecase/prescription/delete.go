package prescription

import (
	"context"

	"github.com/google/uuid"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/audit"
	domain "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/domain/prescription"
)

// DeletePrescription is the administrative purge. It sits outside the
// ledger's consistency contract: chains referencing a purged record are
// the administrator's responsibility.
type DeletePrescription struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeletePrescription(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *DeletePrescription {
	return &DeletePrescription{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *DeletePrescription) Execute(
	ctx context.Context,
	actorID uuid.UUID,
	id uuid.UUID,
) error {

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   audit.ActionPrescriptionDeleted,
		Entity:   "prescription",
		EntityID: &id,
	})

	return nil
}
