package prescription

import (
	"strings"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

// SystemCorrectionReason is stamped on a prescription when a correction
// voids it. It overwrites any manual void reason; the correction is the
// authoritative record of why the prescription is no longer active.
const SystemCorrectionReason = "corrected by a new prescription"

// DefaultVoidReason is used when a doctor voids without giving one.
const DefaultVoidReason = "voided by doctor"

// ===============================
// Domain Actions
// ===============================

// Void marks the prescription inactive. Re-voiding is idempotent: the
// reason is updated, nothing errors. Medicine lines and the issue date
// are never touched here.
func Void(p *models.Prescription, reason string) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultVoidReason
	}

	p.IsVoided = true
	p.VoidReason = reason
}

// ValidateMedicines rejects an empty prescription and lines missing a
// name or dosage.
func ValidateMedicines(lines []models.PrescriptionMedicine) error {
	if len(lines) == 0 {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}

	for _, line := range lines {
		if strings.TrimSpace(line.Name) == "" || strings.TrimSpace(line.Dosage) == "" {
			return httperr.ErrBusiness(httperr.CodeValidation)
		}
	}

	return nil
}
