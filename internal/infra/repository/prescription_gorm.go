package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/domain/prescription"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

type PrescriptionGormRepository struct {
	db *gorm.DB
}

func NewPrescriptionGormRepository(db *gorm.DB) *PrescriptionGormRepository {
	return &PrescriptionGormRepository{db: db}
}

func (r *PrescriptionGormRepository) Create(
	ctx context.Context,
	p *models.Prescription,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PrescriptionGormRepository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*models.Prescription, error) {

	var p models.Prescription
	if err := r.db.WithContext(ctx).
		Preload("Medicines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&p, "id = ?", id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	return &p, nil
}

func (r *PrescriptionGormRepository) List(
	ctx context.Context,
	patientID *uuid.UUID,
) ([]models.Prescription, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Prescription{}).
		Preload("Medicines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
	if patientID != nil {
		q = q.Where("patient_id = ?", *patientID)
	}

	var ps []models.Prescription
	if err := q.Order("issued_at DESC").Find(&ps).Error; err != nil {
		return nil, err
	}

	return ps, nil
}

// UpdateVoidState persists the two void columns only, so a void can
// never touch medicine lines or the issue date.
func (r *PrescriptionGormRepository) UpdateVoidState(
	ctx context.Context,
	p *models.Prescription,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Prescription{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"is_voided":   p.IsVoided,
			"void_reason": p.VoidReason,
		}).Error
}

// CorrectionMove voids the predecessor and creates the successor in one
// transaction. The predecessor row is locked; a predecessor that
// already has a successor fails with conflict before anything changes.
func (r *PrescriptionGormRepository) CorrectionMove(
	ctx context.Context,
	predecessorID uuid.UUID,
	successor *models.Prescription,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var old models.Prescription
		if err := forUpdate(tx).
			First(&old, "id = ?", predecessorID).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodeNotFound)
			}
			return err
		}

		var successors int64
		if err := tx.
			Model(&models.Prescription{}).
			Where("predecessor_id = ?", predecessorID).
			Count(&successors).Error; err != nil {
			return err
		}
		if successors > 0 {
			return httperr.ErrBusiness(httperr.CodeConflict)
		}

		if err := tx.
			Model(&models.Prescription{}).
			Where("id = ?", predecessorID).
			Updates(map[string]any{
				"is_voided":   true,
				"void_reason": domain.SystemCorrectionReason,
			}).Error; err != nil {
			return err
		}

		return tx.Create(successor).Error
	})
}

func (r *PrescriptionGormRepository) Delete(
	ctx context.Context,
	id uuid.UUID,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Delete(&models.PrescriptionMedicine{}, "prescription_id = ?", id).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Prescription{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness(httperr.CodeNotFound)
		}

		return nil
	})
}

// Compile-time check
var _ domain.Repository = (*PrescriptionGormRepository)(nil)
