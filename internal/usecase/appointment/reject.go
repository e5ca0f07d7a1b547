package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/audit"
	domain "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/domain/appointment"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/notification"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/timezone"
)

// RejectAppointment performs the archival move: the repository snapshots
// the live appointment under lock, writes the archive record, and
// deletes the live row in one unit of work, then the patient is told.
// The mail is best-effort and never affects the outcome.
type RejectAppointment struct {
	repo     domain.Repository
	notifier *notification.Dispatcher
	audit    *audit.Dispatcher
}

func NewRejectAppointment(
	repo domain.Repository,
	notifier *notification.Dispatcher,
	auditDispatcher *audit.Dispatcher,
) *RejectAppointment {
	return &RejectAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    auditDispatcher,
	}
}

func (uc *RejectAppointment) Execute(
	ctx context.Context,
	actorID uuid.UUID,
	appointmentID uuid.UUID,
	reason string,
) (*models.RejectedAppointment, error) {

	archived, err := uc.repo.ArchiveRejection(ctx, appointmentID, reason, timezone.Now())
	if err != nil {
		return nil, err
	}

	// Past this point the move is committed; nothing below may change
	// the result returned to the caller.
	uc.notifier.Dispatch(notification.Message{
		To:      archived.Email,
		Subject: fmt.Sprintf("Appointment %s rejected", archived.SequenceCode),
		Body: fmt.Sprintf(
			"Dear %s,\r\n\r\nYour appointment %s scheduled for %s (%s) was rejected.\r\nReason: %s\r\n\r\nMediWise Clinic",
			archived.PatientName,
			archived.SequenceCode,
			archived.Date.Format("2006-01-02"),
			archived.TimeSlot,
			archived.RejectionReason,
		),
	})

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   audit.ActionAppointmentRejected,
		Entity:   "appointment",
		EntityID: &appointmentID,
		Metadata: map[string]any{
			"sequence_code": archived.SequenceCode,
			"reason":        archived.RejectionReason,
		},
	})

	return archived, nil
}
