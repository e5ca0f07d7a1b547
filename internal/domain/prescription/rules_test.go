package prescription

import (
	"testing"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

func TestVoid(t *testing.T) {
	p := &models.Prescription{}

	Void(p, "  wrong dosage  ")
	if !p.IsVoided {
		t.Fatal("expected voided")
	}
	if p.VoidReason != "wrong dosage" {
		t.Fatalf("reason not trimmed: %q", p.VoidReason)
	}

	// Re-void updates the reason, never errors.
	Void(p, "second thoughts")
	if p.VoidReason != "second thoughts" {
		t.Fatalf("expected updated reason, got %q", p.VoidReason)
	}

	Void(p, "   ")
	if p.VoidReason != DefaultVoidReason {
		t.Fatalf("expected default reason, got %q", p.VoidReason)
	}
}

func TestValidateMedicines(t *testing.T) {
	if err := ValidateMedicines(nil); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("empty: expected validation_error, got %v", err)
	}

	missingName := []models.PrescriptionMedicine{{Name: " ", Dosage: "500mg"}}
	if err := ValidateMedicines(missingName); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("missing name: expected validation_error, got %v", err)
	}

	missingDosage := []models.PrescriptionMedicine{{Name: "Amoxicillin"}}
	if err := ValidateMedicines(missingDosage); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("missing dosage: expected validation_error, got %v", err)
	}

	ok := []models.PrescriptionMedicine{
		{Name: "Amoxicillin", Dosage: "500mg"},
		{Name: "Paracetamol", Dosage: "1g", Instructions: "as needed"},
	}
	if err := ValidateMedicines(ok); err != nil {
		t.Fatalf("valid lines rejected: %v", err)
	}
}
