package appointment

import "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "Pending"
	StatusAccepted  Status = "Accepted"
	StatusCompleted Status = "Completed"
	StatusReviewed  Status = "Reviewed"
)

// StatusRejected only ever appears on archive records, never on a live
// appointment.
const StatusRejected = "Rejected"

// ===============================
// Validations
// ===============================

// ParseStatus accepts only the closed enumeration. Any status may be
// set from any other; ordering between the four values is deliberately
// not enforced.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusAccepted, StatusCompleted, StatusReviewed:
		return Status(raw), nil
	}
	return "", httperr.ErrBusiness(httperr.CodeValidation)
}

func InitialStatus() Status {
	return StatusPending
}
