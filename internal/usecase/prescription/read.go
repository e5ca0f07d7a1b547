package prescription

import (
	"context"

	"github.com/google/uuid"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/directory"
	domain "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/domain/prescription"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/dto"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

// ReadPrescriptions serves the display reads: prescriptions enriched
// with patient and doctor names from the directory. Pure reads, no side
// effects.
type ReadPrescriptions struct {
	repo domain.Repository
	dir  directory.Directory
}

func NewReadPrescriptions(
	repo domain.Repository,
	dir directory.Directory,
) *ReadPrescriptions {
	return &ReadPrescriptions{
		repo: repo,
		dir:  dir,
	}
}

func (uc *ReadPrescriptions) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.PrescriptionViewDTO, error) {

	p, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	view := uc.toView(ctx, *p)
	return &view, nil
}

func (uc *ReadPrescriptions) List(
	ctx context.Context,
	patientID *uuid.UUID,
) ([]dto.PrescriptionViewDTO, error) {

	ps, err := uc.repo.List(ctx, patientID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PrescriptionViewDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, uc.toView(ctx, p))
	}

	return out, nil
}

func (uc *ReadPrescriptions) toView(
	ctx context.Context,
	p models.Prescription,
) dto.PrescriptionViewDTO {

	view := dto.PrescriptionViewDTO{
		ID:            p.ID,
		PatientID:     p.PatientID,
		DoctorID:      p.DoctorID,
		AppointmentID: p.AppointmentID,
		Notes:         p.Notes,
		IssuedAt:      p.IssuedAt,
		IsVoided:      p.IsVoided,
		VoidReason:    p.VoidReason,
		PredecessorID: p.PredecessorID,
	}

	for _, m := range p.Medicines {
		view.Medicines = append(view.Medicines, dto.MedicineLineDTO{
			Name:         m.Name,
			Dosage:       m.Dosage,
			Instructions: m.Instructions,
		})
	}

	// Display-only enrichment; a missing directory record simply
	// leaves the name blank.
	if patient, err := uc.dir.GetPatient(ctx, p.PatientID); err == nil {
		view.PatientName = patient.Name
	}
	if doctor, err := uc.dir.GetDoctor(ctx, p.DoctorID); err == nil {
		view.DoctorName = doctor.Name
		view.DoctorSpecialization = doctor.Specialization
	}

	return view
}
