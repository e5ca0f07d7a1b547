package diagnosis

import (
	"testing"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Diagnosed", "Reviewed", "Completed"} {
		if _, err := ParseStatus(valid); err != nil {
			t.Errorf("ParseStatus(%q) failed: %v", valid, err)
		}
	}

	for _, invalid := range []string{"", "pending", "Open", "Closed"} {
		if _, err := ParseStatus(invalid); !httperr.IsBusiness(err, httperr.CodeValidation) {
			t.Errorf("ParseStatus(%q): expected validation_error, got %v", invalid, err)
		}
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusPending {
		t.Fatalf("expected Pending, got %s", InitialStatus())
	}
}
