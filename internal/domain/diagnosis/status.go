package diagnosis

import "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"

type Status string

const (
	StatusPending   Status = "Pending"
	StatusDiagnosed Status = "Diagnosed"
	StatusReviewed  Status = "Reviewed"
	StatusCompleted Status = "Completed"
)

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusDiagnosed, StatusReviewed, StatusCompleted:
		return Status(raw), nil
	}
	return "", httperr.ErrBusiness(httperr.CodeValidation)
}

func InitialStatus() Status {
	return StatusPending
}
