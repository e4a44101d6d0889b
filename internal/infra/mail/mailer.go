package mail

import (
	"context"

	"classbook/internal/pkg/config"
	"classbook/internal/pkg/errs"
	"classbook/internal/usecase/commands"

	gomail "github.com/wneessen/go-mail"
)

// SMTPMailer delivers reminder email over SMTP. An unconfigured mailer (empty
// SMTP_HOST) is valid; the reminder job treats it as a skip condition.
type SMTPMailer struct {
	client *gomail.Client
	from   string
	name   string
}

func NewSMTPMailer(cfg config.MailConfig) (*SMTPMailer, error) {
	if cfg.SMTPHost == "" {
		return &SMTPMailer{}, nil
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.SMTPPort),
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.SMTPUsername),
			gomail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := gomail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to initialize smtp client")
	}

	return &SMTPMailer{client: client, from: cfg.FromAddress, name: cfg.FromName}, nil
}

// Configured reports whether the mailer can actually deliver.
func (m *SMTPMailer) Configured() bool {
	return m.client != nil && m.from != ""
}

func (m *SMTPMailer) Send(ctx context.Context, email commands.OutboundEmail) error {
	if !m.Configured() {
		return errs.New("smtp mailer is not configured")
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.name, m.from); err != nil {
		return errs.Wrap(err, "failed to set from address")
	}
	if err := msg.To(email.To); err != nil {
		return errs.Wrap(err, "failed to set to address")
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, email.Text)
	if email.HTML != "" {
		msg.AddAlternativeString(gomail.TypeTextHTML, email.HTML)
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to send email")
	}
	return nil
}
