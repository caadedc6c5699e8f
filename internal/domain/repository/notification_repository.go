package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// NotificationRepository avisos generados por el ledger.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	List(ctx context.Context, onlyUnread bool, limit, offset int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id int64) (int64, error)
}
