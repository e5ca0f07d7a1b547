package audit

import (
	"log"

	"github.com/google/uuid"
)

// Actions recorded by the clinical core.
const (
	ActionAppointmentBooked     = "appointment_booked"
	ActionAppointmentUpdated    = "appointment_updated"
	ActionAppointmentRemoved    = "appointment_removed"
	ActionAppointmentRejected   = "appointment_rejected"
	ActionPrescriptionIssued    = "prescription_issued"
	ActionPrescriptionVoided    = "prescription_voided"
	ActionPrescriptionCorrected = "prescription_corrected"
	ActionPrescriptionDeleted   = "prescription_deleted"
	ActionDiagnosisCreated      = "diagnosis_created"
	ActionLeaveRequested        = "leave_requested"
)

type Event struct {
	ActorID  *uuid.UUID
	Action   string
	Entity   string
	EntityID *uuid.UUID
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.ActorID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// Full queue: drop the event rather than stall the API.
		log.Println("audit queue full, dropping event")
	}
}
