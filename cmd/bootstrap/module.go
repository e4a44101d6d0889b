package bootstrap

import (
	"classbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	MailerModule,
	SchedulerModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
