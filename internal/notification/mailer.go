package notification

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"time"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/config"
)

// Mailer delivers a single message. Implementations must respect the
// context deadline; the dispatcher treats an overrun as a discarded
// best-effort failure.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ===============================
// SMTP
// ===============================

type SMTPMailer struct {
	cfg config.MailerConfig
}

func NewSMTPMailer(cfg config.MailerConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(SendTimeout)
	}

	conn, err := (&net.Dialer{Deadline: deadline}).DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	_ = conn.SetDeadline(deadline)

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			return err
		}
	}

	if m.cfg.Username != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(m.cfg.DefaultFrom); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.cfg.DefaultFrom, to, subject, body,
	)
	if _, err := w.Write([]byte(msg)); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

var _ Mailer = (*SMTPMailer)(nil)

// ===============================
// No-op (SMTP not configured)
// ===============================

type LogMailer struct{}

func (LogMailer) Send(_ context.Context, to, subject, _ string) error {
	log.Printf("mailer disabled, dropping mail to=%s subject=%q", to, subject)
	return nil
}

var _ Mailer = LogMailer{}
