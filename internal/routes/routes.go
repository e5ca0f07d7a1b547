package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/audit"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/config"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/directory"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/handlers"
	infraRepo "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/infra/repository"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/middleware"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/notification"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/sequence"
	ucAppointment "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/usecase/appointment"
	ucPrescription "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/usecase/prescription"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	prescriptionRepo := infraRepo.NewPrescriptionGormRepository(db)
	dir := directory.NewGormDirectory(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	allocator := newAllocator(db, cfg)

	var mailer notification.Mailer = notification.LogMailer{}
	if cfg.Mailer.Host != "" {
		mailer = notification.NewSMTPMailer(cfg.Mailer)
	}
	notifier := notification.NewDispatcher(mailer)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, dir, allocator, auditDispatcher)
	updateUC := ucAppointment.NewUpdateAppointmentFields(appointmentRepo, auditDispatcher)
	advanceUC := ucAppointment.NewAdvanceAppointmentStatus(appointmentRepo, auditDispatcher)
	removeUC := ucAppointment.NewRemoveAppointment(appointmentRepo, auditDispatcher)
	rejectUC := ucAppointment.NewRejectAppointment(appointmentRepo, notifier, auditDispatcher)
	listUC := ucAppointment.NewListAppointments(appointmentRepo)
	getUC := ucAppointment.NewGetAppointment(appointmentRepo)

	// ======================================================
	// USE CASES — PRESCRIPTIONS
	// ======================================================
	issueUC := ucPrescription.NewIssuePrescription(prescriptionRepo, auditDispatcher)
	voidUC := ucPrescription.NewVoidPrescription(prescriptionRepo, auditDispatcher)
	correctUC := ucPrescription.NewCorrectPrescription(prescriptionRepo, auditDispatcher)
	readUC := ucPrescription.NewReadPrescriptions(prescriptionRepo, dir)
	deleteUC := ucPrescription.NewDeletePrescription(prescriptionRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		updateUC,
		advanceUC,
		removeUC,
		rejectUC,
		listUC,
		getUC,
	)

	rejectedHandler := handlers.NewRejectedAppointmentsHandler(appointmentRepo)

	prescriptionHandler := handlers.NewPrescriptionHandler(
		issueUC,
		voidUC,
		correctUC,
		readUC,
		deleteUC,
	)

	diagnosisHandler := handlers.NewDiagnosisHandler(db, auditDispatcher)
	leaveHandler := handlers.NewLeaveHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PATCH("/appointments/:id", appointmentHandler.Update)
		api.PATCH("/appointments/:id/status", appointmentHandler.AdvanceStatus)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)
		api.POST("/appointments/:id/reject", appointmentHandler.Reject)

		api.GET("/rejected-appointments", rejectedHandler.List)
		api.GET("/rejected-appointments/:id", rejectedHandler.Get)
		api.DELETE("/rejected-appointments/:id", rejectedHandler.Delete)

		// ------------------------------
		// PRESCRIPTIONS
		// ------------------------------
		api.POST("/prescriptions", prescriptionHandler.Create)
		api.GET("/prescriptions", prescriptionHandler.List)
		api.GET("/prescriptions/:id", prescriptionHandler.Get)
		api.PATCH("/prescriptions/:id/void", prescriptionHandler.Void)
		api.POST("/prescriptions/:id/correct", prescriptionHandler.Correct)
		api.DELETE("/prescriptions/:id", prescriptionHandler.Delete)

		// ------------------------------
		// DIAGNOSES
		// ------------------------------
		api.POST("/diagnoses", diagnosisHandler.Create)
		api.GET("/diagnoses", diagnosisHandler.List)
		api.GET("/diagnoses/:id", diagnosisHandler.Get)
		api.PATCH("/diagnoses/:id/status", diagnosisHandler.SetStatus)
		api.DELETE("/diagnoses/:id", diagnosisHandler.Delete)

		// ------------------------------
		// DOCTOR LEAVE
		// ------------------------------
		api.POST("/leaves", leaveHandler.Create)
		api.GET("/leaves", leaveHandler.List)
		api.GET("/leaves/:id", leaveHandler.Get)
		api.GET("/leaves/doctor/:doctorId", leaveHandler.ListByDoctor)
		api.PATCH("/leaves/:id/status", leaveHandler.SetStatus)
		api.PATCH("/leaves/:id/dates", leaveHandler.UpdateDates)
		api.DELETE("/leaves/:id", leaveHandler.Delete)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}

// newAllocator prefers redis when configured; otherwise the DB-backed
// single-writer allocator keeps codes unique without it.
func newAllocator(db *gorm.DB, cfg *config.Config) sequence.Allocator {
	if cfg.RedisURL != "" {
		if client, err := sequence.NewRedisClient(cfg.RedisURL); err == nil {
			return sequence.NewRedisAllocator(client)
		}
		log.Println("redis unavailable, falling back to DB sequence counter")
	}

	allocator, err := sequence.NewCounterAllocator(db)
	if err != nil {
		log.Fatalf("failed to start sequence allocator: %v", err)
	}
	return allocator
}
