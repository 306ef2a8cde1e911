package repository

import (
	"context"

	"wayfare/internal/domain/notification"
	"wayfare/internal/infra"
	"wayfare/internal/infra/db"
	"wayfare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

const insertNotification = `
INSERT INTO notifications (id, user_id, type, title, message, reference_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

func (r *NotificationRepository) Create(ctx context.Context, tx db.DBTX, n *notification.Notification) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertNotification,
		n.ID, n.UserID, n.Type.String(), n.Title, n.Message,
		pgconv.UUIDPtrToPgtype(n.ReferenceID),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification", err)
	}
	return id, nil
}

// Exists is the ledger check that keeps replayed webhooks and repeated sweeps
// from notifying twice for the same booking.
func (r *NotificationRepository) Exists(ctx context.Context, tx db.DBTX, nType notification.Type, referenceID uuid.UUID) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM notifications WHERE reference_id = $1 AND type = $2)`,
		referenceID, nType.String(),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check notification ledger", err)
	}
	return exists, nil
}
