package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/config"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate is shared with the test harness, which runs it against an
// in-memory sqlite database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Patient{},
		&models.Doctor{},
		&models.Appointment{},
		&models.RejectedAppointment{},
		&models.Prescription{},
		&models.PrescriptionMedicine{},
		&models.Diagnosis{},
		&models.DoctorLeave{},
		&models.SequenceCounter{},
		&models.AuditLog{},
	)
}
