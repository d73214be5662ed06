package bootstrap

import (
	"restaurant-api/internal/infra/mail"
	"restaurant-api/internal/pkg/config"
	"restaurant-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailSender,
		fx.Annotate(
			NewNotifier,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewMailSender(cfg config.Config) mail.Sender {
	return mail.NewSMTPSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Sender)
}

func NewNotifier(sender mail.Sender, cfg config.Config) *mail.Notifier {
	return mail.NewNotifier(sender, cfg.Restaurant)
}
