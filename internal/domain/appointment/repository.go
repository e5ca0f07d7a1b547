package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

type Repository interface {
	// -------- Appointment (live set) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uuid.UUID,
	) error

	ListAppointments(
		ctx context.Context,
		patientID *uuid.UUID,
	) ([]models.Appointment, error)

	// -------- Archival move --------

	// ArchiveRejection snapshots the live appointment under lock,
	// inserts the archive record, and deletes the live row as one unit
	// of work. Either both changes commit or neither is visible, and
	// the snapshot always reflects the row as last committed.
	ArchiveRejection(
		ctx context.Context,
		appointmentID uuid.UUID,
		reason string,
		rejectedAt time.Time,
	) (*models.RejectedAppointment, error)

	// -------- Archive (read / purge) --------
	GetRejected(
		ctx context.Context,
		id uuid.UUID,
	) (*models.RejectedAppointment, error)

	ListRejected(
		ctx context.Context,
	) ([]models.RejectedAppointment, error)

	DeleteRejected(
		ctx context.Context,
		id uuid.UUID,
	) error
}
