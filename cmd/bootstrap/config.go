package bootstrap

import (
	"classbook/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule also exposes the config sections constructors depend on, so a
// handler can ask for config.CookieConfig instead of the whole tree.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(cfg config.Config) config.AdminConfig { return cfg.Admin },
		func(cfg config.Config) config.MailConfig { return cfg.Mail },
		func(cfg config.Config) config.ReminderConfig { return cfg.Reminder },
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
	),
)
