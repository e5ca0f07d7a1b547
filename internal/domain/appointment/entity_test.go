package appointment

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Accepted", "Completed", "Reviewed"} {
		if _, err := ParseStatus(valid); err != nil {
			t.Errorf("ParseStatus(%q) failed: %v", valid, err)
		}
	}

	for _, invalid := range []string{"", "pending", "Rejected", "Done"} {
		if _, err := ParseStatus(invalid); !httperr.IsBusiness(err, httperr.CodeValidation) {
			t.Errorf("ParseStatus(%q): expected validation_error, got %v", invalid, err)
		}
	}
}

func TestAdvance(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}

	if err := Advance(ap, "Completed"); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if ap.Status != "Completed" {
		t.Fatalf("expected Completed, got %s", ap.Status)
	}

	// Backward movement is allowed; only the enum is enforced.
	if err := Advance(ap, "Pending"); err != nil {
		t.Fatalf("advance back: %v", err)
	}

	if err := Advance(ap, "Rejected"); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected validation_error, got %v", err)
	}
	if ap.Status != "Pending" {
		t.Fatalf("failed advance must not mutate, got %s", ap.Status)
	}
}

func TestSnapshotRejection(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	ap := &models.Appointment{
		ID:           uuid.New(),
		SequenceCode: "APP0005",
		PatientID:    uuid.New(),
		DoctorID:     uuid.New(),
		PatientName:  "Nimal Perera",
		Email:        "nimal@example.com",
		TimeSlot:     "09:00-09:30",
		Status:       string(StatusPending),
	}

	archived, err := SnapshotRejection(ap, "  doctor unavailable  ", now)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	if archived.AppointmentID != ap.ID {
		t.Fatal("snapshot must reference the live appointment")
	}
	if archived.SequenceCode != ap.SequenceCode {
		t.Fatal("snapshot must carry the sequence code")
	}
	if archived.Status != StatusRejected {
		t.Fatalf("expected Rejected, got %s", archived.Status)
	}
	if archived.RejectionReason != "doctor unavailable" {
		t.Fatalf("reason not trimmed: %q", archived.RejectionReason)
	}
	if !archived.RejectedAt.Equal(now) {
		t.Fatal("unexpected rejection time")
	}
}

func TestSnapshotRejection_BlankReason(t *testing.T) {
	ap := &models.Appointment{ID: uuid.New()}

	for _, reason := range []string{"", "   ", "\t"} {
		if _, err := SnapshotRejection(ap, reason, time.Now()); !httperr.IsBusiness(err, httperr.CodeValidation) {
			t.Errorf("reason %q: expected validation_error, got %v", reason, err)
		}
	}
}
