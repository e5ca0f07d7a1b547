package leave

import (
	"time"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
)

// ===============================
// Leave Type / Status
// ===============================

type Type string

const (
	TypeSick      Type = "Sick"
	TypeAnnual    Type = "Annual"
	TypeEmergency Type = "Emergency"
	TypeOther     Type = "Other"
)

type Status string

const (
	StatusPlan      Status = "Plan"
	StatusTaken     Status = "Taken"
	StatusCancelled Status = "Cancelled"
	StatusOngoing   Status = "Ongoing"
)

func ParseType(raw string) (Type, error) {
	switch Type(raw) {
	case TypeSick, TypeAnnual, TypeEmergency, TypeOther:
		return Type(raw), nil
	}
	return "", httperr.ErrBusiness(httperr.CodeValidation)
}

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPlan, StatusTaken, StatusCancelled, StatusOngoing:
		return Status(raw), nil
	}
	return "", httperr.ErrBusiness(httperr.CodeValidation)
}

func InitialStatus() Status {
	return StatusPlan
}

// ValidateRange requires the end date to fall strictly after the start.
// Overlap with other leave or with booked appointments is deliberately
// not checked.
func ValidateRange(start, end time.Time) error {
	if !end.After(start) {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}
	return nil
}
