package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/audit"
	dbpkg "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/db"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/directory"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
	infrarepo "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/infra/repository"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/notification"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/sequence"
)

// ======================================================
// TEST SETUP
// ======================================================

type captureMailer struct {
	sent chan notification.Message
}

func (m *captureMailer) Send(_ context.Context, to, subject, body string) error {
	m.sent <- notification.Message{To: to, Subject: subject, Body: body}
	return nil
}

type failingMailer struct{}

func (failingMailer) Send(_ context.Context, _, _, _ string) error {
	return errors.New("smtp connection refused")
}

// stalledMailer hangs until the delivery deadline expires.
type stalledMailer struct{}

func (stalledMailer) Send(ctx context.Context, _, _, _ string) error {
	<-ctx.Done()
	return ctx.Err()
}

type testEnv struct {
	db   *gorm.DB
	repo *infrarepo.AppointmentGormRepository
	mail chan notification.Message

	book    *BookAppointment
	reject  *RejectAppointment
	advance *AdvanceAppointmentStatus
	update  *UpdateAppointmentFields
	remove  *RemoveAppointment
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mail := make(chan notification.Message, 10)
	env := newTestEnvWithMailer(t, &captureMailer{sent: mail})
	env.mail = mail
	return env
}

func newTestEnvWithMailer(t *testing.T, mailer notification.Mailer) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	allocator, err := sequence.NewCounterAllocator(db)
	if err != nil {
		t.Fatalf("allocator: %v", err)
	}

	notifier := notification.NewDispatcher(mailer)
	auditor := audit.NewDispatcher(audit.New(db))

	repo := infrarepo.NewAppointmentGormRepository(db)
	dir := directory.NewGormDirectory(db)

	return &testEnv{
		db:   db,
		repo: repo,

		book:    NewBookAppointment(repo, dir, allocator, auditor),
		reject:  NewRejectAppointment(repo, notifier, auditor),
		advance: NewAdvanceAppointmentStatus(repo, auditor),
		update:  NewUpdateAppointmentFields(repo, auditor),
		remove:  NewRemoveAppointment(repo, auditor),
	}
}

func (e *testEnv) seedPatient(t *testing.T) models.Patient {
	t.Helper()

	p := models.Patient{
		ID:      uuid.New(),
		Name:    "Nimal Perera",
		Address: "12 Galle Road, Colombo",
		NIC:     "912345678V",
		Phone:   "0771234567",
		Email:   "nimal@example.com",
	}
	if err := e.db.Create(&p).Error; err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return p
}

func (e *testEnv) seedDoctor(t *testing.T) models.Doctor {
	t.Helper()

	d := models.Doctor{
		ID:             uuid.New(),
		Name:           "Dr. Silva",
		Specialization: "Cardiology",
	}
	if err := e.db.Create(&d).Error; err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	return d
}

func validBooking(patient models.Patient, doctor models.Doctor) BookAppointmentInput {
	return BookAppointmentInput{
		PatientID:            patient.ID,
		DoctorID:             doctor.ID,
		PatientName:          patient.Name,
		Address:              patient.Address,
		NIC:                  patient.NIC,
		Phone:                patient.Phone,
		Email:                patient.Email,
		DoctorSpecialization: doctor.Specialization,
		Date:                 "2026-09-15",
		TimeSlot:             "09:00-09:30",
	}
}

// ======================================================
// BOOKING
// ======================================================

func TestBookAppointment_AssignsSequentialCodes(t *testing.T) {
	env := newTestEnv(t)
	patient := env.seedPatient(t)
	doctor := env.seedDoctor(t)
	ctx := context.Background()

	first, err := env.book.Execute(ctx, validBooking(patient, doctor))
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if first.SequenceCode != "APP0002" {
		t.Fatalf("expected first code APP0002, got %s", first.SequenceCode)
	}
	if first.Status != "Pending" {
		t.Fatalf("expected status Pending, got %s", first.Status)
	}
	if first.DoctorName != doctor.Name {
		t.Fatalf("expected captured doctor name %q, got %q", doctor.Name, first.DoctorName)
	}

	second, err := env.book.Execute(ctx, validBooking(patient, doctor))
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if second.SequenceCode != "APP0003" {
		t.Fatalf("expected second code APP0003, got %s", second.SequenceCode)
	}
}

func TestBookAppointment_ValidationFailureConsumesNoCode(t *testing.T) {
	env := newTestEnv(t)
	patient := env.seedPatient(t)
	doctor := env.seedDoctor(t)
	ctx := context.Background()

	bad := validBooking(patient, doctor)
	bad.Phone = "   "

	if _, err := env.book.Execute(ctx, bad); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected validation_error, got %v", err)
	}

	// The failed attempt must not have burned a code.
	ap, err := env.book.Execute(ctx, validBooking(patient, doctor))
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if ap.SequenceCode != "APP0002" {
		t.Fatalf("expected APP0002 after failed attempt, got %s", ap.SequenceCode)
	}
}

func TestBookAppointment_UnknownPatient(t *testing.T) {
	env := newTestEnv(t)
	doctor := env.seedDoctor(t)
	ctx := context.Background()

	in := validBooking(models.Patient{
		ID:      uuid.New(),
		Name:    "Ghost",
		Address: "nowhere",
		Phone:   "0770000000",
		Email:   "ghost@example.com",
	}, doctor)

	if _, err := env.book.Execute(ctx, in); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestBookAppointment_RejectsBadEmail(t *testing.T) {
	env := newTestEnv(t)
	patient := env.seedPatient(t)
	doctor := env.seedDoctor(t)

	in := validBooking(patient, doctor)
	in.Email = "not-an-email"

	if _, err := env.book.Execute(context.Background(), in); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected validation_error, got %v", err)
	}
}

// ======================================================
// REJECTION (ARCHIVAL MOVE)
// ======================================================

func TestRejectAppointment_MovesToArchive(t *testing.T) {
	env := newTestEnv(t)
	patient := env.seedPatient(t)
	doctor := env.seedDoctor(t)
	ctx := context.Background()
	staffID := uuid.New()

	ap, err := env.book.Execute(ctx, validBooking(patient, doctor))
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	archived, err := env.reject.Execute(ctx, staffID, ap.ID, "doctor unavailable")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}

	// The live row is gone.
	if _, err := env.repo.GetAppointment(ctx, ap.ID); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected live lookup not_found, got %v", err)
	}

	// Exactly one archive record, carrying the full snapshot.
	var count int64
	if err := env.db.Model(&models.RejectedAppointment{}).Count(&count).Error; err != nil {
		t.Fatalf("count archive: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 archive record, got %d", count)
	}

	if archived.AppointmentID != ap.ID {
		t.Fatalf("archive does not reference the live appointment")
	}
	if archived.SequenceCode != ap.SequenceCode {
		t.Fatalf("sequence code changed: %s vs %s", archived.SequenceCode, ap.SequenceCode)
	}
	if archived.PatientName != ap.PatientName || archived.Email != ap.Email {
		t.Fatalf("contact snapshot not carried over")
	}
	if archived.Status != "Rejected" {
		t.Fatalf("expected archive status Rejected, got %s", archived.Status)
	}
	if archived.RejectionReason != "doctor unavailable" {
		t.Fatalf("unexpected reason %q", archived.RejectionReason)
	}

	// The patient is notified after the move commits.
	select {
	case msg := <-env.mail:
		if msg.To != ap.Email {
			t.Fatalf("mail sent to %s, expected %s", msg.To, ap.Email)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected a rejection mail")
	}
}

func TestRejectAppointment_BlankReasonChangesNothing(t *testing.T) {
	env := newTestEnv(t)
	patient := env.seedPatient(t)
	doctor := env.seedDoctor(t)
	ctx := context.Background()

	ap, err := env.book.Execute(ctx, validBooking(patient, doctor))
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	if _, err := env.reject.Execute(ctx, uuid.New(), ap.ID, "   "); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected validation_error, got %v", err)
	}

	// Live row untouched, archive empty.
	if _, err := env.repo.GetAppointment(ctx, ap.ID); err != nil {
		t.Fatalf("live appointment should survive: %v", err)
	}
	var count int64
	if err := env.db.Model(&models.RejectedAppointment{}).Count(&count).Error; err != nil {
		t.Fatalf("count archive: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty archive, got %d records", count)
	}
}

func TestRejectAppointment_ArchivesLatestCommittedFields(t *testing.T) {
	env := newTestEnv(t)
	patient := env.seedPatient(t)
	doctor := env.seedDoctor(t)
	ctx := context.Background()

	ap, err := env.book.Execute(ctx, validBooking(patient, doctor))
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	// A contact update lands after booking. The archive is built from
	// the row as stored at move time, so it must carry the new value.
	if err := env.db.Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Update("phone", "0112223334").Error; err != nil {
		t.Fatalf("update phone: %v", err)
	}

	archived, err := env.reject.Execute(ctx, uuid.New(), ap.ID, "doctor unavailable")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if archived.Phone != "0112223334" {
		t.Fatalf("archive lost the committed update: got phone %q", archived.Phone)
	}

	var stored models.RejectedAppointment
	if err := env.db.First(&stored, "appointment_id = ?", ap.ID).Error; err != nil {
		t.Fatalf("load archive: %v", err)
	}
	if stored.Phone != "0112223334" {
		t.Fatalf("persisted archive lost the committed update: got phone %q", stored.Phone)
	}
}

func TestRejectAppointment_MailFailureDoesNotAffectOutcome(t *testing.T) {
	env := newTestEnvWithMailer(t, failingMailer{})
	patient := env.seedPatient(t)
	doctor := env.seedDoctor(t)
	ctx := context.Background()

	ap, err := env.book.Execute(ctx, validBooking(patient, doctor))
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	archived, err := env.reject.Execute(ctx, uuid.New(), ap.ID, "no show")
	if err != nil {
		t.Fatalf("reject must succeed despite delivery failure: %v", err)
	}
	if archived.RejectionReason != "no show" {
		t.Fatalf("unexpected reason %q", archived.RejectionReason)
	}

	// The move is committed regardless of the mailer.
	if _, err := env.repo.GetAppointment(ctx, ap.ID); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected live lookup not_found, got %v", err)
	}
	var count int64
	if err := env.db.Model(&models.RejectedAppointment{}).Count(&count).Error; err != nil {
		t.Fatalf("count archive: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 archive record, got %d", count)
	}
}

func TestRejectAppointment_SlowMailerDoesNotDelayOutcome(t *testing.T) {
	env := newTestEnvWithMailer(t, stalledMailer{})
	patient := env.seedPatient(t)
	doctor := env.seedDoctor(t)
	ctx := context.Background()

	ap, err := env.book.Execute(ctx, validBooking(patient, doctor))
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	start := time.Now()
	if _, err := env.reject.Execute(ctx, uuid.New(), ap.ID, "overbooked"); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if elapsed := time.Since(start); elapsed >= notification.SendTimeout {
		t.Fatalf("response waited on delivery: took %v", elapsed)
	}

	if _, err := env.repo.GetAppointment(ctx, ap.ID); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected live lookup not_found, got %v", err)
	}
}

func TestRejectAppointment_UnknownID(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.reject.Execute(context.Background(), uuid.New(), uuid.New(), "no show")
	if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

// ======================================================
// STATUS / FIELD UPDATES
// ======================================================

func TestAdvanceStatus_AcceptsAnyEnumValue(t *testing.T) {
	env := newTestEnv(t)
	patient := env.seedPatient(t)
	doctor := env.seedDoctor(t)
	ctx := context.Background()

	ap, err := env.book.Execute(ctx, validBooking(patient, doctor))
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	// Ordering is not enforced: Pending straight to Reviewed is fine.
	updated, err := env.advance.Execute(ctx, uuid.New(), ap.ID, "Reviewed")
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if updated.Status != "Reviewed" {
		t.Fatalf("expected Reviewed, got %s", updated.Status)
	}
}

func TestAdvanceStatus_RejectsOutsideEnum(t *testing.T) {
	env := newTestEnv(t)
	patient := env.seedPatient(t)
	doctor := env.seedDoctor(t)
	ctx := context.Background()

	ap, err := env.book.Execute(ctx, validBooking(patient, doctor))
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	// "Rejected" is an archive-only status, never settable on a live
	// appointment.
	for _, status := range []string{"Rejected", "Unknown", ""} {
		if _, err := env.advance.Execute(ctx, uuid.New(), ap.ID, status); !httperr.IsBusiness(err, httperr.CodeValidation) {
			t.Fatalf("status %q: expected validation_error, got %v", status, err)
		}
	}

	got, err := env.repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != "Pending" {
		t.Fatalf("status changed to %s after failed updates", got.Status)
	}
}

func TestUpdateFields_PatchesOnlyProvidedValues(t *testing.T) {
	env := newTestEnv(t)
	patient := env.seedPatient(t)
	doctor := env.seedDoctor(t)
	ctx := context.Background()

	ap, err := env.book.Execute(ctx, validBooking(patient, doctor))
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	phone := "0719876543"
	updated, err := env.update.Execute(ctx, patient.ID, ap.ID, UpdateAppointmentInput{
		Phone: &phone,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Phone != phone {
		t.Fatalf("expected phone %s, got %s", phone, updated.Phone)
	}
	if updated.PatientName != ap.PatientName || updated.Email != ap.Email {
		t.Fatalf("untouched fields changed")
	}
	if updated.SequenceCode != ap.SequenceCode {
		t.Fatalf("sequence code must never change on update")
	}
}

func TestUpdateFields_BlankPatchKeepsStoredValue(t *testing.T) {
	env := newTestEnv(t)
	patient := env.seedPatient(t)
	doctor := env.seedDoctor(t)
	ctx := context.Background()

	ap, err := env.book.Execute(ctx, validBooking(patient, doctor))
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	// Blank strings are ignored, not applied: contact fields can be
	// corrected but never emptied through the patch path.
	blank := "   "
	updated, err := env.update.Execute(ctx, patient.ID, ap.ID, UpdateAppointmentInput{
		Phone: &blank,
		Email: &blank,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Phone != ap.Phone || updated.Email != ap.Email {
		t.Fatalf("blank patch cleared stored values: phone %q, email %q",
			updated.Phone, updated.Email)
	}
}

func TestRemoveAppointment_DeletesWithoutArchiving(t *testing.T) {
	env := newTestEnv(t)
	patient := env.seedPatient(t)
	doctor := env.seedDoctor(t)
	ctx := context.Background()

	ap, err := env.book.Execute(ctx, validBooking(patient, doctor))
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	if err := env.remove.Execute(ctx, patient.ID, ap.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if _, err := env.repo.GetAppointment(ctx, ap.ID); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected not_found after removal, got %v", err)
	}

	var count int64
	if err := env.db.Model(&models.RejectedAppointment{}).Count(&count).Error; err != nil {
		t.Fatalf("count archive: %v", err)
	}
	if count != 0 {
		t.Fatalf("cancellation must not write archive records, got %d", count)
	}
}
