package prescription

import (
	"context"

	"github.com/google/uuid"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		p *models.Prescription,
	) error

	Get(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Prescription, error)

	List(
		ctx context.Context,
		patientID *uuid.UUID,
	) ([]models.Prescription, error)

	// UpdateVoidState persists void metadata only; medicine lines and
	// the issue date are never touched.
	UpdateVoidState(
		ctx context.Context,
		p *models.Prescription,
	) error

	// CorrectionMove voids the predecessor with the system reason and
	// creates the successor in one unit of work. Fails with conflict
	// when the predecessor already has a successor.
	CorrectionMove(
		ctx context.Context,
		predecessorID uuid.UUID,
		successor *models.Prescription,
	) error

	Delete(
		ctx context.Context,
		id uuid.UUID,
	) error
}
