package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/domain/appointment"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Live set
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		First(&ap, "id = ?", id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uuid.UUID,
) error {

	res := r.db.WithContext(ctx).
		Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}

	return nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	patientID *uuid.UUID,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})
	if patientID != nil {
		q = q.Where("patient_id = ?", *patientID)
	}

	var aps []models.Appointment
	if err := q.Order("created_at ASC").Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Archival move
// --------------------------------------------------

// ArchiveRejection runs the snapshot insert and the live-row delete in
// one transaction. The live row is locked first, and the archive record
// is built from that locked read, so an update committed just before
// the move is carried into the archive rather than silently dropped.
func (r *AppointmentGormRepository) ArchiveRejection(
	ctx context.Context,
	appointmentID uuid.UUID,
	reason string,
	rejectedAt time.Time,
) (*models.RejectedAppointment, error) {

	var archived *models.RejectedAppointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var live models.Appointment
		if err := forUpdate(tx).
			First(&live, "id = ?", appointmentID).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodeNotFound)
			}
			return err
		}

		snap, err := domain.SnapshotRejection(&live, reason, rejectedAt)
		if err != nil {
			return err
		}

		if err := tx.Create(snap).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Appointment{}, "id = ?", appointmentID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness(httperr.CodeNotFound)
		}

		archived = snap
		return nil
	})

	if err != nil {
		if httperr.BusinessCode(err) != "" {
			return nil, err
		}
		return nil, httperr.ErrBusiness(httperr.CodeArchivalFailure)
	}

	return archived, nil
}

// --------------------------------------------------
// Archive
// --------------------------------------------------

func (r *AppointmentGormRepository) GetRejected(
	ctx context.Context,
	id uuid.UUID,
) (*models.RejectedAppointment, error) {

	var ra models.RejectedAppointment
	if err := r.db.WithContext(ctx).
		First(&ra, "id = ?", id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	return &ra, nil
}

func (r *AppointmentGormRepository) ListRejected(
	ctx context.Context,
) ([]models.RejectedAppointment, error) {

	var ras []models.RejectedAppointment
	if err := r.db.WithContext(ctx).
		Order("rejected_at DESC").
		Find(&ras).Error; err != nil {
		return nil, err
	}

	return ras, nil
}

func (r *AppointmentGormRepository) DeleteRejected(
	ctx context.Context,
	id uuid.UUID,
) error {

	res := r.db.WithContext(ctx).
		Delete(&models.RejectedAppointment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}

	return nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
