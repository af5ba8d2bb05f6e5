package telegram

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type UpdateHandler interface {
	Handle(ctx context.Context, upd Update)
}

type UpdateSource interface {
	GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error)
}

const retryDelay = 2 * time.Second

// Poller long-polls getUpdates and handles every update in its own goroutine.
type Poller struct {
	source  UpdateSource
	handler UpdateHandler
	timeout time.Duration
	logger  *slog.Logger

	cancel context.CancelFunc
	loopWG sync.WaitGroup
	wg     sync.WaitGroup
}

func NewPoller(source UpdateSource, handler UpdateHandler, timeout time.Duration, logger *slog.Logger) *Poller {
	return &Poller{source: source, handler: handler, timeout: timeout, logger: logger}
}

func (p *Poller) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.loopWG.Add(1)
	go p.loop(ctx)
	p.logger.Info("telegram poller started")
}

// Stop ends polling and waits for in-flight handlers until ctx expires.
func (p *Poller) Stop(ctx context.Context) error {
	if p.cancel == nil {
		return nil
	}
	p.cancel()

	done := make(chan struct{})
	go func() {
		p.loopWG.Wait()
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		p.logger.Info("telegram poller stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Poller) loop(ctx context.Context) {
	defer p.loopWG.Done()
	var offset int64
	for {
		updates, err := p.source.GetUpdates(ctx, offset, p.timeout)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			p.logger.Warn("getUpdates failed", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(retryDelay):
			}
			continue
		}

		for _, upd := range updates {
			if upd.UpdateID >= offset {
				offset = upd.UpdateID + 1
			}
			p.wg.Add(1)
			go func(upd Update) {
				defer p.wg.Done()
				defer func() {
					if r := recover(); r != nil {
						p.logger.Error("recovered from panic in update handler", "error", r, "update_id", upd.UpdateID)
					}
				}()
				p.handler.Handle(ctx, upd)
			}(upd)
		}
	}
}
