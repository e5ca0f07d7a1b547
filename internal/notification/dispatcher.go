package notification

import (
	"context"
	"log"
	"time"
)

// SendTimeout bounds a single delivery attempt. A slow mail server must
// never make the operation that triggered the mail appear to hang.
const SendTimeout = 5 * time.Second

type Message struct {
	To      string
	Subject string
	Body    string
}

// Dispatcher queues messages for best-effort delivery on a single
// background worker. Enqueueing never blocks the caller; a full queue
// drops the message.
type Dispatcher struct {
	mailer Mailer
	queue  chan Message
}

func NewDispatcher(mailer Mailer) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		queue:  make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), SendTimeout)
		if err := d.mailer.Send(ctx, msg.To, msg.Subject, msg.Body); err != nil {
			log.Printf("notification delivery failed to=%s: %v", msg.To, err)
		}
		cancel()
	}
}

// Dispatch enqueues a message. The outcome is logged, never returned:
// delivery failure must not affect the operation that produced it.
func (d *Dispatcher) Dispatch(msg Message) {
	if msg.To == "" {
		return
	}

	select {
	case d.queue <- msg:
	default:
		log.Println("notification queue full, dropping message")
	}
}
