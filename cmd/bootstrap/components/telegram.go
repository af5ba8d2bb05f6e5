package components

import (
	"context"
	"log/slog"
	"time"

	"card-drop/internal/domain/participant"
	"card-drop/internal/handler/bot"
	"card-drop/internal/infra/telegram"
	"card-drop/internal/pkg/config"
	"card-drop/internal/usecase/commands"
	"card-drop/internal/usecase/queries"
	"card-drop/internal/usecase/shared"

	"go.uber.org/fx"
)

// added to the long-poll timeout for the HTTP client
const pollTimeoutMargin = 10 * time.Second

var TelegramModule = fx.Module("telegram",
	fx.Provide(
		NewTelegramClient,
		func(c *telegram.Client) bot.Sender { return c },
		NewDelivery,
		NewBotHandler,
		NewPoller,
	),
)

func NewTelegramClient(cfg config.Config) *telegram.Client {
	timeout := cfg.Telegram.PollTimeout + pollTimeoutMargin
	return telegram.NewClient(cfg.Telegram.APIURL, cfg.Telegram.Token, timeout)
}

// NewDelivery only logs notifications when the bot is disabled.
func NewDelivery(cfg config.Config, client *telegram.Client, logger *slog.Logger) shared.Delivery {
	if !cfg.Telegram.Enabled {
		return logDelivery{logger: logger}
	}
	return telegram.NewDelivery(client)
}

func NewBotHandler(cfg config.Config, cmds commands.ClaimCommands, q queries.LeaderboardQueries, sender bot.Sender, opener bot.ItemOpener, logger *slog.Logger) *bot.Handler {
	return bot.NewHandler(cmds, q, sender, opener, bot.Options{
		Cooldown:  cfg.Game.Cooldown,
		TopLimit:  cfg.Game.TopLimit,
		PointsMin: cfg.Game.PointsMin,
		PointsMax: cfg.Game.PointsMax,
	}, logger)
}

func NewPoller(cfg config.Config, client *telegram.Client, handler *bot.Handler, logger *slog.Logger) *telegram.Poller {
	return telegram.NewPoller(client, handler, cfg.Telegram.PollTimeout, logger)
}

type logDelivery struct {
	logger *slog.Logger
}

func (d logDelivery) Notify(_ context.Context, id participant.ID, text string) error {
	d.logger.Info("notification (telegram disabled)", "participant_id", int64(id), "text", text)
	return nil
}
