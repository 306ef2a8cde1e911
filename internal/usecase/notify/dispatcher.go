package notify

import (
	"context"
	"log/slog"

	"wayfare/internal/domain/notification"
	"wayfare/internal/usecase/shared"
)

// Deliverer pushes a stored notification to an external channel (email, push).
type Deliverer interface {
	Deliver(ctx context.Context, n *notification.Notification) error
}

// NoopDeliverer keeps notifications in-app only.
type NoopDeliverer struct{}

func (NoopDeliverer) Deliver(context.Context, *notification.Notification) error {
	return nil
}

// Dispatcher writes notifications through the ledger. One notification per
// (type, booking) ever: replayed webhooks and overlapping sweeps dedup here.
type Dispatcher struct {
	deliverer Deliverer
}

func NewDispatcher(deliverer Deliverer) *Dispatcher {
	return &Dispatcher{deliverer: deliverer}
}

// Dispatch records the notification inside the caller's transaction and
// reports whether it was new. Delivery happens after the row exists and is
// best effort.
func (d *Dispatcher) Dispatch(ctx context.Context, tx shared.Tx, n *notification.Notification) (bool, error) {
	if n.ReferenceID != nil {
		exists, err := tx.Notifications().Exists(ctx, tx.DB(), n.Type, *n.ReferenceID)
		if err != nil {
			return false, err
		}
		if exists {
			return false, nil
		}
	}

	if _, err := tx.Notifications().Create(ctx, tx.DB(), n); err != nil {
		return false, err
	}

	if err := d.deliverer.Deliver(ctx, n); err != nil {
		slog.Warn("notification delivery failed",
			"type", n.Type.String(),
			"user_id", n.UserID,
			"error", err.Error())
	}
	return true, nil
}
