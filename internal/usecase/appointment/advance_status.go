package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/audit"
	domain "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/domain/appointment"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

type AdvanceAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAdvanceAppointmentStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *AdvanceAppointmentStatus {
	return &AdvanceAppointmentStatus{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *AdvanceAppointmentStatus) Execute(
	ctx context.Context,
	actorID uuid.UUID,
	id uuid.UUID,
	status string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Advance(ap, status); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   audit.ActionAppointmentUpdated,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": ap.Status},
	})

	return ap, nil
}
