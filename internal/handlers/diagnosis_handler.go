package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/audit"
	domain "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/domain/diagnosis"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httpresp"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/middleware"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type DiagnosisHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewDiagnosisHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *DiagnosisHandler {
	return &DiagnosisHandler{
		db:    db,
		audit: auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateDiagnosisRequest struct {
	AppointmentID  string   `json:"appointment_id" binding:"required"`
	PatientID      string   `json:"patient_id" binding:"required"`
	Symptoms       []string `json:"symptoms" binding:"required"`
	AssumedIllness string   `json:"assumed_illness" binding:"required"`
	Description    string   `json:"description"`
	Notes          string   `json:"notes"`
}

type SetDiagnosisStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *DiagnosisHandler) Create(c *gin.Context) {
	if subjectRole(c) != middleware.RoleDoctor {
		httperr.Unauthorized(c, "doctor_only", "Only doctors may record diagnoses.")
		return
	}

	var req CreateDiagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is invalid.")
		return
	}

	appointmentID, err := uuid.Parse(req.AppointmentID)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment identifier is not valid.")
		return
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		httperr.BadRequest(c, "invalid_patient_id", "Patient identifier is not valid.")
		return
	}

	doctorID := subjectID(c)

	diag := models.Diagnosis{
		ID:             uuid.New(),
		AppointmentID:  appointmentID,
		PatientID:      patientID,
		DoctorID:       doctorID,
		Symptoms:       req.Symptoms,
		AssumedIllness: req.AssumedIllness,
		Description:    req.Description,
		Notes:          req.Notes,
		// Status is forced at creation regardless of input.
		Status: string(domain.InitialStatus()),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&diag).Error; err != nil {
		httperr.Internal(c, "failed_to_create", "Failed to record diagnosis.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &doctorID,
		Action:   audit.ActionDiagnosisCreated,
		Entity:   "diagnosis",
		EntityID: &diag.ID,
	})

	httpresp.Created(c, diag)
}

// ======================================================
// STATUS
// ======================================================

func (h *DiagnosisHandler) SetStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req SetDiagnosisStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Status is required.")
		return
	}

	// Out-of-enum values are rejected before any state change.
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		writeBusiness(c, err, "invalid_status", "Status is not valid.")
		return
	}

	var diag models.Diagnosis
	if err := h.db.WithContext(c.Request.Context()).
		First(&diag, "id = ?", id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Diagnosis not found.")
			return
		}
		httperr.Internal(c, "failed_to_get", "Failed to load diagnosis.")
		return
	}

	diag.Status = string(status)
	if err := h.db.WithContext(c.Request.Context()).Save(&diag).Error; err != nil {
		httperr.Internal(c, "failed_to_update", "Failed to update diagnosis.")
		return
	}

	httpresp.OK(c, diag)
}

// ======================================================
// READS / DELETE
// ======================================================

func (h *DiagnosisHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Model(&models.Diagnosis{})
	if subjectRole(c) == middleware.RolePatient {
		q = q.Where("patient_id = ?", subjectID(c))
	}

	var diags []models.Diagnosis
	if err := q.Order("created_at DESC").Find(&diags).Error; err != nil {
		httperr.Internal(c, "failed_to_list", "Failed to list diagnoses.")
		return
	}

	httpresp.List(c, diags)
}

func (h *DiagnosisHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var diag models.Diagnosis
	if err := h.db.WithContext(c.Request.Context()).
		First(&diag, "id = ?", id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Diagnosis not found.")
			return
		}
		httperr.Internal(c, "failed_to_get", "Failed to load diagnosis.")
		return
	}

	httpresp.OK(c, diag)
}

func (h *DiagnosisHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Delete(&models.Diagnosis{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete", "Failed to delete diagnosis.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Diagnosis not found.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
