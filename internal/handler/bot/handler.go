package bot

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"card-drop/internal/domain/participant"
	"card-drop/internal/infra/telegram"
	"card-drop/internal/pkg/errs"
	"card-drop/internal/usecase/commands"
	"card-drop/internal/usecase/queries"
	"card-drop/internal/usecase/shared"
)

type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) (int64, error)
	SendPhoto(ctx context.Context, chatID int64, filename string, photo io.Reader, caption string) (int64, error)
}

// ItemOpener returns the artwork behind an item id.
type ItemOpener interface {
	Open(ctx context.Context, itemID string) (io.ReadCloser, error)
}

type Options struct {
	Cooldown  time.Duration
	TopLimit  int
	PointsMin int
	PointsMax int
}

// Handler answers chat commands. It implements telegram.UpdateHandler.
type Handler struct {
	cmds   commands.ClaimCommands
	q      queries.LeaderboardQueries
	sender Sender
	opener ItemOpener
	opts   Options
	logger *slog.Logger
}

func NewHandler(cmds commands.ClaimCommands, q queries.LeaderboardQueries, sender Sender, opener ItemOpener, opts Options, logger *slog.Logger) *Handler {
	return &Handler{cmds: cmds, q: q, sender: sender, opener: opener, opts: opts, logger: logger}
}

var _ telegram.UpdateHandler = (*Handler)(nil)

func (h *Handler) Handle(ctx context.Context, upd telegram.Update) {
	msg := upd.Message
	if msg == nil || msg.From == nil || msg.From.IsBot {
		return
	}
	cmd, ok := parseCommand(msg.Text)
	if !ok {
		return
	}

	id := participant.ID(msg.From.ID)
	if err := h.cmds.RegisterIdentity(ctx, id, msg.From.FirstName, msg.From.LastName); err != nil {
		h.logger.Warn("failed to record display name", "participant_id", msg.From.ID, "error", err)
	}
	name := participant.DisplayNameFrom(msg.From.FirstName, msg.From.LastName)
	if name == "" {
		name = participant.FallbackName(id)
	}

	chatID := msg.Chat.ID
	var (
		text string
		err  error
	)
	switch cmd {
	case "start":
		text, err = h.start(ctx, id, name)
	case "drop":
		h.drop(ctx, chatID, id, name)
		return
	case "list":
		text, err = h.list(ctx, id, name)
	case "top":
		text, err = h.top(ctx)
	case "help":
		text = helpText(h.opts.Cooldown, h.opts.PointsMin, h.opts.PointsMax)
	case "stats":
		text, err = h.stats(ctx)
	default:
		return
	}
	if err != nil {
		h.logger.Error("command failed", "command", cmd, "participant_id", msg.From.ID, "error", err)
		text = msgTryAgain
	}
	h.reply(ctx, chatID, text)
}

// parseCommand accepts "/drop" and "/drop@SomeBot", ignoring arguments.
func parseCommand(text string) (string, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", false
	}
	cmd := strings.TrimPrefix(fields[0], "/")
	if at := strings.IndexByte(cmd, '@'); at >= 0 {
		cmd = cmd[:at]
	}
	if cmd == "" {
		return "", false
	}
	return strings.ToLower(cmd), true
}

func (h *Handler) start(ctx context.Context, id participant.ID, name string) (string, error) {
	status, err := h.q.Status(ctx, id)
	if err != nil {
		return "", err
	}
	stats, err := h.q.Stats(ctx)
	if err != nil {
		return "", err
	}
	return startText(name, status, stats, h.opts.Cooldown), nil
}

func (h *Handler) list(ctx context.Context, id participant.ID, name string) (string, error) {
	status, err := h.q.Status(ctx, id)
	if err != nil {
		return "", err
	}
	return listText(name, status), nil
}

func (h *Handler) top(ctx context.Context) (string, error) {
	entries, err := h.q.Top(ctx, h.opts.TopLimit)
	if err != nil {
		return "", err
	}
	return topText(entries), nil
}

func (h *Handler) stats(ctx context.Context) (string, error) {
	stats, err := h.q.Stats(ctx)
	if err != nil {
		return "", err
	}
	return statsText(stats), nil
}

func (h *Handler) drop(ctx context.Context, chatID int64, id participant.ID, name string) {
	result, err := shared.WithDefaultRetry(ctx, func(ctx context.Context) (*commands.ClaimResult, error) {
		return h.cmds.Claim(ctx, id)
	})
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrNoItemsAvailable):
		h.reply(ctx, chatID, msgNoItems)
		return
	case errs.Is(err, shared.ErrMaxRetriesExceeded):
		h.reply(ctx, chatID, msgBusy)
		return
	case errs.Is(err, errs.ErrPersistenceFailure) && result != nil:
		// the claim stands in memory and the next write retries the flush
		h.logger.Warn("delivering claim that is not yet persisted", "participant_id", int64(id))
	default:
		h.logger.Error("claim failed", "participant_id", int64(id), "error", err)
		h.reply(ctx, chatID, msgTryAgain)
		return
	}

	if result.Outcome == commands.OutcomeBlocked {
		h.reply(ctx, chatID, blockedText(name, result.Remaining))
		return
	}
	h.sendItem(ctx, chatID, result)
}

// sendItem sends the artwork as a photo, or the caption alone when the
// artwork cannot be opened or uploaded.
func (h *Handler) sendItem(ctx context.Context, chatID int64, result *commands.ClaimResult) {
	caption := claimCaption(result, h.opts.Cooldown)

	if h.opener != nil {
		rc, err := h.opener.Open(ctx, result.ItemID)
		if err == nil {
			_, err = h.sender.SendPhoto(ctx, chatID, result.ItemID, rc, caption)
			_ = rc.Close()
			if err == nil {
				return
			}
		}
		h.logger.Warn("failed to send item photo, falling back to text",
			"item", result.ItemID,
			"error", err)
	}
	h.reply(ctx, chatID, caption+"\n🖼 "+result.ItemID)
}

func (h *Handler) reply(ctx context.Context, chatID int64, text string) {
	if _, err := h.sender.SendMessage(ctx, chatID, text); err != nil {
		h.logger.Warn("failed to send reply", "chat_id", chatID, "error", err)
	}
}
