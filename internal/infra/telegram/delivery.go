package telegram

import (
	"context"

	"card-drop/internal/domain/participant"
	"card-drop/internal/pkg/errs"
	"card-drop/internal/usecase/shared"
)

type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) (int64, error)
}

// Delivery sends notifications to the participant's private chat, whose id
// equals the user id.
type Delivery struct {
	sender MessageSender
}

func NewDelivery(sender MessageSender) *Delivery {
	return &Delivery{sender: sender}
}

func (d *Delivery) Notify(ctx context.Context, id participant.ID, text string) error {
	if _, err := d.sender.SendMessage(ctx, int64(id), text); err != nil {
		return errs.Mark(errs.Wrapf(err, "notify participant %d", id), errs.ErrDeliveryFailure)
	}
	return nil
}

var _ shared.Delivery = (*Delivery)(nil)
