// Package mail delivers account verification messages.
package mail

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const verificationSubject = "Подтверждение регистрации"

// Sender delivers a verification message carrying token to the given address.
type Sender interface {
	SendVerificationEmail(ctx context.Context, to, token string) error
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	VerifyURL string
}

type SMTPSender struct {
	cfg  SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg, send: smtp.SendMail}
}

func (s *SMTPSender) SendVerificationEmail(ctx context.Context, to, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	msg := buildVerificationMessage(s.cfg.From, to, VerificationLink(s.cfg.VerifyURL, token))
	if err := s.send(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		log.Error().Err(err).Str("to", to).Str("smtp_addr", addr).Msg("Failed to send verification email")
		return fmt.Errorf("send verification email: %w", err)
	}

	log.Info().Str("to", to).Msg("Verification email sent")
	return nil
}

// LogSender writes the verification link to the log instead of sending mail.
// It is used when no SMTP host is configured.
type LogSender struct {
	VerifyURL string
}

func (s LogSender) SendVerificationEmail(_ context.Context, to, token string) error {
	log.Info().
		Str("to", to).
		Str("link", VerificationLink(s.VerifyURL, token)).
		Msg("SMTP not configured, verification email not sent")
	return nil
}

// VerificationLink appends the token as a query parameter to base.
func VerificationLink(base, token string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "token=" + token
}

func buildVerificationMessage(from, to, link string) []byte {
	body := "Для подтверждения регистрации, пожалуйста, перейдите по ссылке:\n" + link

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", verificationSubject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
