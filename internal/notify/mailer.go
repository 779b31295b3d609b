package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"time"

	"fitness_tracker/internal/config"
	"fitness_tracker/internal/logger"
	"fitness_tracker/internal/models"

	"github.com/jordan-wright/email"
)

// Mailer sends account mail over SMTP. With no host configured it only logs.
type Mailer struct {
	cfg  config.SMTPConfig
	log  *logger.Logger
	send func(ctx context.Context, e *email.Email) error
}

const defaultSendTimeout = 10 * time.Second

// NewMailer creates a mailer for cfg.
func NewMailer(cfg config.SMTPConfig, log *logger.Logger) *Mailer {
	m := &Mailer{cfg: cfg, log: log.With("component", "mailer")}
	m.send = m.sendSMTP
	return m
}

// Enabled reports whether an SMTP host is configured.
func (m *Mailer) Enabled() bool {
	return m.cfg.Host != ""
}

// Welcome greets a newly registered user.
func (m *Mailer) Welcome(ctx context.Context, u *models.User) error {
	if u == nil || u.Email == "" {
		return nil
	}
	if !m.Enabled() {
		m.log.Debugw("smtp disabled, welcome mail skipped", "username", u.Username)
		return nil
	}

	e := email.NewEmail()
	e.From = m.cfg.From
	e.To = []string{u.Email}
	e.Subject = "Welcome to WellStride"
	e.Text = []byte(welcomeBody(u))

	if err := m.send(ctx, e); err != nil {
		m.log.Errorf("Failed to send welcome email to %s: %v", u.Email, err)
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	m.log.Infof("Email sent to %s: %s", u.Email, e.Subject)
	return nil
}

// sendSMTP delivers e within ctx and the configured timeout.
// email.Email.Send has no deadline of its own, so the session is driven
// here over a connection whose deadline is the earlier of the two.
func (m *Mailer) sendSMTP(ctx context.Context, e *email.Email) error {
	raw, err := e.Bytes()
	if err != nil {
		return fmt.Errorf("build message: %w", err)
	}
	from, err := mail.ParseAddress(e.From)
	if err != nil {
		return fmt.Errorf("parse sender: %w", err)
	}

	timeout := m.cfg.Timeout
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	dialer := net.Dialer{Deadline: deadline}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port)))
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	defer conn.Close()
	if err := conn.SetDeadline(deadline); err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	c, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return fmt.Errorf("smtp greeting: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if m.cfg.Username != "" {
		if err := c.Auth(smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err := c.Mail(from.Address); err != nil {
		return err
	}
	for _, to := range e.To {
		rcpt, err := mail.ParseAddress(to)
		if err != nil {
			return fmt.Errorf("parse recipient: %w", err)
		}
		if err := c.Rcpt(rcpt.Address); err != nil {
			return err
		}
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

func welcomeBody(u *models.User) string {
	body := fmt.Sprintf("Hi %s,\n\n", u.Username)
	if u.SignUpMethod == models.SignUpMethodEmail {
		body += "Your account has been created. You can sign in with your username and password.\n"
	} else {
		body += fmt.Sprintf("Your account has been created from your %s login.\n", u.SignUpMethod)
	}
	body += "\nHappy training,\nWellStride"
	return body
}
