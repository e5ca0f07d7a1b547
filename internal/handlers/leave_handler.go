package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/audit"
	domain "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/domain/leave"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httpresp"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/middleware"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type LeaveHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewLeaveHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *LeaveHandler {
	return &LeaveHandler{
		db:    db,
		audit: auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RequestLeaveRequest struct {
	DoctorID  string `json:"doctor_id"`
	LeaveType string `json:"leave_type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
}

type SetLeaveStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateLeaveDatesRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// ======================================================
// REQUEST LEAVE
// ======================================================

func (h *LeaveHandler) Create(c *gin.Context) {
	if !leaveWriteAllowed(c) {
		return
	}
	role := subjectRole(c)

	var req RequestLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is invalid.")
		return
	}

	// Doctors request their own leave; staff file on a doctor's behalf.
	doctorID := subjectID(c)
	if role == middleware.RoleStaff {
		parsed, err := uuid.Parse(req.DoctorID)
		if err != nil {
			httperr.BadRequest(c, "invalid_doctor_id", "Doctor identifier is not valid.")
			return
		}
		doctorID = parsed
	}

	leaveType, err := domain.ParseType(req.LeaveType)
	if err != nil {
		writeBusiness(c, err, "invalid_leave_type", "Leave type is not valid.")
		return
	}

	start, end, ok := h.parseRange(c, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	lv := models.DoctorLeave{
		ID:        uuid.New(),
		DoctorID:  doctorID,
		LeaveType: string(leaveType),
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
		// Requests always open in Plan.
		Status: string(domain.InitialStatus()),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&lv).Error; err != nil {
		httperr.Internal(c, "failed_to_create", "Failed to create leave request.")
		return
	}

	actor := subjectID(c)
	h.audit.Dispatch(audit.Event{
		ActorID:  &actor,
		Action:   audit.ActionLeaveRequested,
		Entity:   "doctor_leave",
		EntityID: &lv.ID,
	})

	httpresp.Created(c, lv)
}

// ======================================================
// STATUS / DATES
// ======================================================

func (h *LeaveHandler) SetStatus(c *gin.Context) {
	if !leaveWriteAllowed(c) {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req SetLeaveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Status is required.")
		return
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		writeBusiness(c, err, "invalid_status", "Status is not valid.")
		return
	}

	lv, ok := h.load(c, id)
	if !ok {
		return
	}

	lv.Status = string(status)
	if err := h.db.WithContext(c.Request.Context()).Save(lv).Error; err != nil {
		httperr.Internal(c, "failed_to_update", "Failed to update leave request.")
		return
	}

	httpresp.OK(c, lv)
}

func (h *LeaveHandler) UpdateDates(c *gin.Context) {
	if !leaveWriteAllowed(c) {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateLeaveDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Start and end dates are required.")
		return
	}

	// Validation happens before the stored record is touched.
	start, end, ok := h.parseRange(c, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	lv, ok := h.load(c, id)
	if !ok {
		return
	}

	lv.StartDate = start
	lv.EndDate = end
	if err := h.db.WithContext(c.Request.Context()).Save(lv).Error; err != nil {
		httperr.Internal(c, "failed_to_update", "Failed to update leave dates.")
		return
	}

	httpresp.OK(c, lv)
}

// ======================================================
// READS / DELETE
// ======================================================

func (h *LeaveHandler) List(c *gin.Context) {
	var leaves []models.DoctorLeave
	if err := h.db.WithContext(c.Request.Context()).
		Order("start_date ASC").
		Find(&leaves).Error; err != nil {
		httperr.Internal(c, "failed_to_list", "Failed to list leave requests.")
		return
	}

	httpresp.List(c, leaves)
}

func (h *LeaveHandler) ListByDoctor(c *gin.Context) {
	doctorID, ok := parseIDParam(c, "doctorId")
	if !ok {
		return
	}

	var leaves []models.DoctorLeave
	if err := h.db.WithContext(c.Request.Context()).
		Where("doctor_id = ?", doctorID).
		Order("start_date ASC").
		Find(&leaves).Error; err != nil {
		httperr.Internal(c, "failed_to_list", "Failed to list leave requests.")
		return
	}

	httpresp.List(c, leaves)
}

func (h *LeaveHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	lv, ok := h.load(c, id)
	if !ok {
		return
	}

	httpresp.OK(c, lv)
}

func (h *LeaveHandler) Delete(c *gin.Context) {
	if !leaveWriteAllowed(c) {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Delete(&models.DoctorLeave{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete", "Failed to delete leave request.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Leave request not found.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}

// ======================================================
// HELPERS
// ======================================================

// leaveWriteAllowed gates every mutation of leave records: doctors and
// staff only, reads stay open to any authenticated caller.
func leaveWriteAllowed(c *gin.Context) bool {
	role := subjectRole(c)
	if role != middleware.RoleDoctor && role != middleware.RoleStaff {
		httperr.Unauthorized(c, "doctor_or_staff_only", "Only doctors or staff may manage leave records.")
		return false
	}
	return true
}

func (h *LeaveHandler) load(c *gin.Context, id uuid.UUID) (*models.DoctorLeave, bool) {
	var lv models.DoctorLeave
	if err := h.db.WithContext(c.Request.Context()).
		First(&lv, "id = ?", id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Leave request not found.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get", "Failed to load leave request.")
		return nil, false
	}

	return &lv, true
}

func (h *LeaveHandler) parseRange(c *gin.Context, startStr, endStr string) (time.Time, time.Time, bool) {
	start, err := timezone.ParseDate(startStr)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Start date is not valid.")
		return time.Time{}, time.Time{}, false
	}

	end, err := timezone.ParseDate(endStr)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "End date is not valid.")
		return time.Time{}, time.Time{}, false
	}

	if err := domain.ValidateRange(start, end); err != nil {
		writeBusiness(c, err, "invalid_range", "End date must fall after the start date.")
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}
