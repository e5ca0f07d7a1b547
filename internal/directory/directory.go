package directory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

// Directory is the read-only window onto patient and doctor records,
// which are owned by the profile service. The clinical core uses it for
// existence checks and denormalized display fields only.
type Directory interface {
	PatientExists(ctx context.Context, id uuid.UUID) (bool, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*models.Patient, error)
	DoctorExists(ctx context.Context, id uuid.UUID) (bool, error)
	GetDoctor(ctx context.Context, id uuid.UUID) (*models.Doctor, error)
}

type GormDirectory struct {
	db *gorm.DB
}

func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

func (d *GormDirectory) PatientExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := d.db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (d *GormDirectory) GetPatient(ctx context.Context, id uuid.UUID) (*models.Patient, error) {
	var p models.Patient
	if err := d.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *GormDirectory) DoctorExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := d.db.WithContext(ctx).
		Model(&models.Doctor{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (d *GormDirectory) GetDoctor(ctx context.Context, id uuid.UUID) (*models.Doctor, error) {
	var doc models.Doctor
	if err := d.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// IsNotFound reports whether a directory lookup failed because the
// record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

var _ Directory = (*GormDirectory)(nil)
