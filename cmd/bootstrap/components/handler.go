package components

import (
	"card-drop/internal/handler"
	"card-drop/internal/handler/api"
	"card-drop/internal/handler/middleware"
	"card-drop/internal/pkg/config"
	"card-drop/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewParticipantHandler,
		func(q queries.LeaderboardQueries, cfg config.Config) *api.LeaderboardHandler {
			return api.NewLeaderboardHandler(q, cfg.Game.TopLimit)
		},
		func(cfg config.Config) *middleware.AuthMiddleware {
			return middleware.NewAuthMiddleware(cfg.Server.APIToken)
		},
	),
	fx.Invoke(handler.NewRouter),
)
