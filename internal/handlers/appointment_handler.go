package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httpresp"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/middleware"
	ucAppointment "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/usecase/appointment"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC    *ucAppointment.BookAppointment
	updateUC  *ucAppointment.UpdateAppointmentFields
	advanceUC *ucAppointment.AdvanceAppointmentStatus
	removeUC  *ucAppointment.RemoveAppointment
	rejectUC  *ucAppointment.RejectAppointment
	listUC    *ucAppointment.ListAppointments
	getUC     *ucAppointment.GetAppointment
}

func NewAppointmentHandler(
	bookUC *ucAppointment.BookAppointment,
	updateUC *ucAppointment.UpdateAppointmentFields,
	advanceUC *ucAppointment.AdvanceAppointmentStatus,
	removeUC *ucAppointment.RemoveAppointment,
	rejectUC *ucAppointment.RejectAppointment,
	listUC *ucAppointment.ListAppointments,
	getUC *ucAppointment.GetAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:    bookUC,
		updateUC:  updateUC,
		advanceUC: advanceUC,
		removeUC:  removeUC,
		rejectUC:  rejectUC,
		listUC:    listUC,
		getUC:     getUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	PatientID            string `json:"patient_id"`
	DoctorID             string `json:"doctor_id" binding:"required"`
	PatientName          string `json:"patient_name" binding:"required"`
	Address              string `json:"address" binding:"required"`
	NIC                  string `json:"nic"`
	Phone                string `json:"phone" binding:"required"`
	Email                string `json:"email" binding:"required"`
	DoctorSpecialization string `json:"doctor_specialization" binding:"required"`
	Date                 string `json:"date" binding:"required"`
	TimeSlot             string `json:"time_slot" binding:"required"`
}

type UpdateAppointmentRequest struct {
	PatientName          *string `json:"patient_name"`
	Address              *string `json:"address"`
	NIC                  *string `json:"nic"`
	Phone                *string `json:"phone"`
	Email                *string `json:"email"`
	DoctorSpecialization *string `json:"doctor_specialization"`
	Date                 *string `json:"date"`
	TimeSlot             *string `json:"time_slot"`
	Status               *string `json:"status"`
}

type AdvanceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RejectAppointmentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	subject := subjectID(c)
	role := subjectRole(c)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is invalid.")
		return
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Doctor identifier is not valid.")
		return
	}

	// Patients book for themselves; staff may book for any patient.
	patientID := subject
	if role != middleware.RolePatient {
		if req.PatientID == "" {
			httperr.BadRequest(c, "missing_patient_id", "Patient identifier is required.")
			return
		}
		patientID, err = uuid.Parse(req.PatientID)
		if err != nil {
			httperr.BadRequest(c, "invalid_patient_id", "Patient identifier is not valid.")
			return
		}
	}

	// DNS-level email sanity stays at the edge; the core only checks
	// the shape.
	if !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "Email domain does not appear to exist.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		PatientID:            patientID,
		DoctorID:             doctorID,
		PatientName:          req.PatientName,
		Address:              req.Address,
		NIC:                  req.NIC,
		Phone:                req.Phone,
		Email:                req.Email,
		DoctorSpecialization: req.DoctorSpecialization,
		Date:                 req.Date,
		TimeSlot:             req.TimeSlot,
	})
	if err != nil {
		writeBusiness(c, err, "failed_to_book", "Failed to book appointment.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// READS
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var patientScope *uuid.UUID
	if subjectRole(c) == middleware.RolePatient {
		id := subjectID(c)
		patientScope = &id
	}

	out, err := h.listUC.Execute(c.Request.Context(), patientScope)
	if err != nil {
		httperr.Internal(c, "failed_to_list", "Failed to list appointments.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeBusiness(c, err, "failed_to_get", "Failed to load appointment.")
		return
	}

	if subjectRole(c) == middleware.RolePatient && ap.PatientID != subjectID(c) {
		httperr.NotFound(c, httperr.CodeNotFound, "Record not found.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE / STATUS / REMOVE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is invalid.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), subjectID(c), id, ucAppointment.UpdateAppointmentInput{
		PatientName:          req.PatientName,
		Address:              req.Address,
		NIC:                  req.NIC,
		Phone:                req.Phone,
		Email:                req.Email,
		DoctorSpecialization: req.DoctorSpecialization,
		Date:                 req.Date,
		TimeSlot:             req.TimeSlot,
		Status:               req.Status,
	})
	if err != nil {
		writeBusiness(c, err, "failed_to_update", "Failed to update appointment.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) AdvanceStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AdvanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is invalid.")
		return
	}

	ap, err := h.advanceUC.Execute(c.Request.Context(), subjectID(c), id, req.Status)
	if err != nil {
		writeBusiness(c, err, "failed_to_update_status", "Failed to update status.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.removeUC.Execute(c.Request.Context(), subjectID(c), id); err != nil {
		writeBusiness(c, err, "failed_to_delete", "Failed to delete appointment.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}

// ======================================================
// REJECT (archival move)
// ======================================================

func (h *AppointmentHandler) Reject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RejectAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Rejection reason is required.")
		return
	}

	archived, err := h.rejectUC.Execute(c.Request.Context(), subjectID(c), id, req.Reason)
	if err != nil {
		writeBusiness(c, err, "failed_to_reject", "Failed to reject appointment.")
		return
	}

	httpresp.OK(c, archived)
}
