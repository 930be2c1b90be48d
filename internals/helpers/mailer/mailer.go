package mailer

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"darulfatheh_backend/internals/configs"
)

type Message struct {
	From    string
	To      []string
	Subject string
	Body    string // text/plain
}

// Mailer mengirim satu pesan; implementasi boleh blocking (network I/O).
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New memilih SMTP bila EMAIL_HOST diset, selain itu hanya log.
func New(cfg configs.MailConfig, log logrus.FieldLogger) Mailer {
	if cfg.Enabled() {
		return NewSMTPMailer(cfg)
	}
	return &LogMailer{Log: log}
}

// =======================
// SMTP (gomail)
// =======================
type SMTPMailer struct {
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg configs.MailConfig) *SMTPMailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.Port == 465 // implicit TLS; port lain pakai STARTTLS bila server mendukung
	return &SMTPMailer{dialer: d}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gm := gomail.NewMessage()
	gm.SetHeader("From", msg.From)
	gm.SetHeader("To", msg.To...)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)
	return errors.Wrap(m.dialer.DialAndSend(gm), "smtp send")
}

// =======================
// Console (development)
// =======================
type LogMailer struct {
	Log logrus.FieldLogger
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	log := m.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	log.WithFields(logrus.Fields{
		"from":    msg.From,
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info("📧 email (console)\n" + msg.Body)
	return nil
}
