package postgres

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo avisos del ledger.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create inserta el aviso.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO asset_notifications (type, asset_id, asset_name, asset_code, category_id, message,
			created_at, priority, is_read)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		n.Type, n.AssetID, n.AssetName, n.AssetCode, n.CategoryID, n.Message, n.CreatedAt, n.Priority, n.Read,
	).Scan(&n.ID)
	if err != nil {
		return wrap("insert notification", err)
	}
	return nil
}

// List avisos del más reciente al más antiguo.
func (r *NotificationRepo) List(ctx context.Context, onlyUnread bool, limit, offset int) ([]*entity.Notification, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, type, asset_id, asset_name, asset_code, category_id, message, created_at, priority, is_read
		FROM asset_notifications
		WHERE NOT ($1 AND is_read)
		ORDER BY id DESC LIMIT $2 OFFSET $3`, onlyUnread, limit, offset)
	if err != nil {
		return nil, wrap("list notifications", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.AssetID, &n.AssetName, &n.AssetCode, &n.CategoryID,
			&n.Message, &n.CreatedAt, &n.Priority, &n.Read); err != nil {
			return nil, wrap("scan notification", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca el aviso como leído; devuelve filas afectadas.
func (r *NotificationRepo) MarkRead(ctx context.Context, id int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE asset_notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return 0, wrap("mark notification read", err)
	}
	return cmd.RowsAffected(), nil
}
