package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/domain/appointment"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(
	repo domain.Repository,
) *GetAppointment {
	return &GetAppointment{
		repo: repo,
	}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {
	return uc.repo.GetAppointment(ctx, id)
}
