package components

import (
	"card-drop/internal/pkg/clock"
	"card-drop/internal/pkg/random"
	"card-drop/internal/usecase/commands"
	"card-drop/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	random.NewSource,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewNotifier,
		commands.NewClaimCommands,
		commands.NewNotificationCommands,
		fx.Annotate(
			commands.NewInventoryCommands,
			fx.As(new(commands.InventoryCommands)),
			fx.As(new(commands.ItemPicker)),
			fx.As(new(queries.InventoryReader)),
		),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLeaderboardQueries,
	),
)
