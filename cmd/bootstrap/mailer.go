package bootstrap

import (
	"classbook/internal/infra/mail"
	"classbook/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		fx.Annotate(
			mail.NewSMTPMailer,
			fx.As(new(commands.Mailer)),
		),
	),
)
