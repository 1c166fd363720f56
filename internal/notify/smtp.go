package notify

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"evaluationservice/internal/errdefs"
	"evaluationservice/internal/model"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender delivers mail through a relay with PLAIN auth when credentials
// are configured.
type SMTPSender struct {
	cfg      SMTPConfig
	sendMail sendMailFunc
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg, sendMail: smtp.SendMail}
}

func (s *SMTPSender) Send(ctx context.Context, mail model.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	done := make(chan error, 1)
	go func() {
		done <- s.sendMail(addr, auth, s.cfg.From, []string{mail.To}, buildMessage(s.cfg.From, mail))
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: smtp send: %v", errdefs.ErrUnavailable, ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: smtp send: %v", errdefs.ErrUnavailable, err)
		}
		return nil
	}
}

func buildMessage(from string, mail model.Mail) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + mail.To + "\r\n")
	b.WriteString("Subject: " + mail.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(mail.Content)
	b.WriteString("\r\n")
	return []byte(b.String())
}
