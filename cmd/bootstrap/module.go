package bootstrap

import (
	"card-drop/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.PersistenceModule,
	components.RepositoryModule,
	components.SchedulerModule,
	components.UseCaseModule,
	components.TelegramModule,
	components.HandlerModule,
	StartupModule,
)
