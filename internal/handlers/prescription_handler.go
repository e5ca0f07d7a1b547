package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httpresp"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/middleware"
	ucPrescription "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/usecase/prescription"
)

// ======================================================
// HANDLER
// ======================================================

type PrescriptionHandler struct {
	issueUC   *ucPrescription.IssuePrescription
	voidUC    *ucPrescription.VoidPrescription
	correctUC *ucPrescription.CorrectPrescription
	readUC    *ucPrescription.ReadPrescriptions
	deleteUC  *ucPrescription.DeletePrescription
}

func NewPrescriptionHandler(
	issueUC *ucPrescription.IssuePrescription,
	voidUC *ucPrescription.VoidPrescription,
	correctUC *ucPrescription.CorrectPrescription,
	readUC *ucPrescription.ReadPrescriptions,
	deleteUC *ucPrescription.DeletePrescription,
) *PrescriptionHandler {
	return &PrescriptionHandler{
		issueUC:   issueUC,
		voidUC:    voidUC,
		correctUC: correctUC,
		readUC:    readUC,
		deleteUC:  deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type MedicineLineRequest struct {
	Name         string `json:"name" binding:"required"`
	Dosage       string `json:"dosage" binding:"required"`
	Instructions string `json:"instructions"`
}

type IssuePrescriptionRequest struct {
	PatientID     string                `json:"patient_id" binding:"required"`
	AppointmentID string                `json:"appointment_id"`
	Medicines     []MedicineLineRequest `json:"medicines" binding:"required"`
	Notes         string                `json:"notes"`
}

type VoidPrescriptionRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// ISSUE
// ======================================================

func (h *PrescriptionHandler) Create(c *gin.Context) {
	if subjectRole(c) != middleware.RoleDoctor {
		httperr.Unauthorized(c, "doctor_only", "Only doctors may issue prescriptions.")
		return
	}

	in, ok := h.bindIssueInput(c)
	if !ok {
		return
	}

	p, err := h.issueUC.Execute(c.Request.Context(), in)
	if err != nil {
		writeBusiness(c, err, "failed_to_issue", "Failed to issue prescription.")
		return
	}

	httpresp.Created(c, p)
}

// ======================================================
// VOID / CORRECT
// ======================================================

func (h *PrescriptionHandler) Void(c *gin.Context) {
	if subjectRole(c) != middleware.RoleDoctor {
		httperr.Unauthorized(c, "doctor_only", "Only doctors may void prescriptions.")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req VoidPrescriptionRequest
	_ = c.ShouldBindJSON(&req) // reason is optional

	p, err := h.voidUC.Execute(c.Request.Context(), subjectID(c), id, req.Reason)
	if err != nil {
		writeBusiness(c, err, "failed_to_void", "Failed to void prescription.")
		return
	}

	httpresp.OK(c, p)
}

func (h *PrescriptionHandler) Correct(c *gin.Context) {
	if subjectRole(c) != middleware.RoleDoctor {
		httperr.Unauthorized(c, "doctor_only", "Only doctors may correct prescriptions.")
		return
	}

	oldID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	in, ok := h.bindIssueInput(c)
	if !ok {
		return
	}

	successor, err := h.correctUC.Execute(c.Request.Context(), oldID, in)
	if err != nil {
		writeBusiness(c, err, "failed_to_correct", "Failed to correct prescription.")
		return
	}

	httpresp.Created(c, successor)
}

// ======================================================
// READS / DELETE
// ======================================================

func (h *PrescriptionHandler) List(c *gin.Context) {
	var patientScope *uuid.UUID
	if subjectRole(c) == middleware.RolePatient {
		id := subjectID(c)
		patientScope = &id
	}

	out, err := h.readUC.List(c.Request.Context(), patientScope)
	if err != nil {
		httperr.Internal(c, "failed_to_list", "Failed to list prescriptions.")
		return
	}

	httpresp.List(c, out)
}

func (h *PrescriptionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.readUC.Get(c.Request.Context(), id)
	if err != nil {
		writeBusiness(c, err, "failed_to_get", "Failed to load prescription.")
		return
	}

	if subjectRole(c) == middleware.RolePatient && view.PatientID != subjectID(c) {
		httperr.NotFound(c, httperr.CodeNotFound, "Record not found.")
		return
	}

	httpresp.OK(c, view)
}

func (h *PrescriptionHandler) Delete(c *gin.Context) {
	if subjectRole(c) != middleware.RoleStaff {
		httperr.Unauthorized(c, "staff_only", "Only staff may delete prescriptions.")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), subjectID(c), id); err != nil {
		writeBusiness(c, err, "failed_to_delete", "Failed to delete prescription.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}

// ======================================================
// HELPERS
// ======================================================

func (h *PrescriptionHandler) bindIssueInput(c *gin.Context) (ucPrescription.IssuePrescriptionInput, bool) {
	var req IssuePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is invalid.")
		return ucPrescription.IssuePrescriptionInput{}, false
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		httperr.BadRequest(c, "invalid_patient_id", "Patient identifier is not valid.")
		return ucPrescription.IssuePrescriptionInput{}, false
	}

	var appointmentID uuid.UUID
	if req.AppointmentID != "" {
		appointmentID, err = uuid.Parse(req.AppointmentID)
		if err != nil {
			httperr.BadRequest(c, "invalid_appointment_id", "Appointment identifier is not valid.")
			return ucPrescription.IssuePrescriptionInput{}, false
		}
	}

	medicines := make([]ucPrescription.MedicineLine, 0, len(req.Medicines))
	for _, line := range req.Medicines {
		medicines = append(medicines, ucPrescription.MedicineLine{
			Name:         line.Name,
			Dosage:       line.Dosage,
			Instructions: line.Instructions,
		})
	}

	return ucPrescription.IssuePrescriptionInput{
		PatientID:     patientID,
		DoctorID:      subjectID(c),
		AppointmentID: appointmentID,
		Medicines:     medicines,
		Notes:         req.Notes,
	}, true
}
