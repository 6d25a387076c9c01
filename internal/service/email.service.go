package service

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"auth-service/internal/domain"
)

type EmailConfig struct {
	SMTPHost string
	SMTPPort string
	Username string
	Password string
	From     string
}

// EmailSender delivers HTML mail over implicit-TLS SMTP (port 465).
type EmailSender struct {
	cfg EmailConfig
}

func NewEmailSender(cfg EmailConfig) *EmailSender {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &EmailSender{cfg: cfg}
}

func (e *EmailSender) Send(ctx context.Context, to, subject, body string) error {
	from := e.cfg.From
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", from) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			fmt.Sprintf("Message-ID: <%s@%s>\r\n", uuid.NewString(), e.cfg.SMTPHost) +
			"MIME-Version: 1.0\r\n" + // required for HTML
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	serverAddr := e.cfg.SMTPHost + ":" + e.cfg.SMTPPort

	// Implicit TLS for port 465
	tlsConfig := &tls.Config{
		ServerName: e.cfg.SMTPHost,
	}
	dialer := &tls.Dialer{Config: tlsConfig}

	conn, err := dialer.DialContext(ctx, "tcp", serverAddr)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, e.cfg.SMTPHost)
	if err != nil {
		return err
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", e.cfg.Username, e.cfg.Password, e.cfg.SMTPHost)
	if err := client.Auth(auth); err != nil {
		return err
	}

	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

// Mail is one outbound message together with its audit metadata.
type Mail struct {
	UserID  string
	To      string
	Subject string
	Type    string // otp, password-reset, etc.
	HTML    string
}

// Sender delivers one message to one recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// EmailLogStore records delivery attempts.
type EmailLogStore interface {
	LogEmail(ctx context.Context, entry domain.EmailLog) error
}

// LoggedMailer sends through a Sender and records every attempt in the
// email_logs collection. Logging is best effort and never fails the send.
type LoggedMailer struct {
	sender Sender
	logs   EmailLogStore
	logger *zap.Logger
}

func NewLoggedMailer(sender Sender, logs EmailLogStore, logger *zap.Logger) *LoggedMailer {
	return &LoggedMailer{sender: sender, logs: logs, logger: logger}
}

func (m *LoggedMailer) Send(ctx context.Context, mail Mail) error {
	err := m.sender.Send(ctx, mail.To, mail.Subject, mail.HTML)

	entry := domain.EmailLog{
		ID:             uuid.NewString(),
		UserID:         mail.UserID,
		Subject:        mail.Subject,
		RecipientEmail: mail.To,
		Type:           mail.Type,
		Status:         "sent",
		SentAt:         time.Now(),
	}
	if err != nil {
		entry.Status = "failed"
		entry.ErrorMessage = err.Error()
	}
	if logErr := m.logs.LogEmail(ctx, entry); logErr != nil {
		m.logger.Warn("failed to insert email log",
			zap.String("recipient", mail.To),
			zap.Error(logErr))
	}

	return err
}
