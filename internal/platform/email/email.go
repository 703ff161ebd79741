package email

import (
	"context"
	"strings"

	"gopkg.in/gomail.v2"

	"ems/internal/domain/notify"
	"ems/internal/platform/config"
)

type noopNotifier struct{}

func (noopNotifier) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	return nil
}

type smtpNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg config.Config) notify.Notifier {
	if !cfg.EmailEnabled || cfg.SMTPHost == "" {
		return noopNotifier{}
	}
	return &smtpNotifier{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.EmailFrom,
	}
}

func (n *smtpNotifier) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	if strings.TrimSpace(to) == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	if htmlBody != "" {
		msg.AddAlternative("text/html", htmlBody)
	}
	return n.dialer.DialAndSend(msg)
}
