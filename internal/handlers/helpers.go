package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/middleware"
)

func subjectID(c *gin.Context) uuid.UUID {
	return c.MustGet(middleware.ContextSubjectID).(uuid.UUID)
}

func subjectRole(c *gin.Context) string {
	return c.MustGet(middleware.ContextRole).(string)
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifier is not valid.")
		return uuid.Nil, false
	}
	return id, true
}

// writeBusiness maps a business error onto the HTTP error contract.
// Anything that is not a business error is an internal failure.
func writeBusiness(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	switch httperr.BusinessCode(err) {
	case httperr.CodeValidation:
		httperr.BadRequest(c, httperr.CodeValidation, "Request is missing or carries invalid fields.")
	case httperr.CodeNotFound:
		httperr.NotFound(c, httperr.CodeNotFound, "Record not found.")
	case httperr.CodeConflict:
		httperr.Conflict(c, httperr.CodeConflict, "Operation would violate a record invariant.")
	case httperr.CodeAllocationUnavailable:
		httperr.Unavailable(c, httperr.CodeAllocationUnavailable, "Booking codes are temporarily unavailable.")
	case httperr.CodeArchivalFailure:
		httperr.Internal(c, httperr.CodeArchivalFailure, "Archival move failed; retry the operation.")
	default:
		httperr.Internal(c, fallbackCode, fallbackMsg)
	}
}
