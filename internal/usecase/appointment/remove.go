package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/audit"
	domain "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/domain/appointment"
)

// RemoveAppointment is plain cancellation: the live row is deleted with
// no archive copy. Rejection is the archival path.
type RemoveAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *RemoveAppointment {
	return &RemoveAppointment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *RemoveAppointment) Execute(
	ctx context.Context,
	actorID uuid.UUID,
	id uuid.UUID,
) error {

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   audit.ActionAppointmentRemoved,
		Entity:   "appointment",
		EntityID: &id,
	})

	return nil
}
