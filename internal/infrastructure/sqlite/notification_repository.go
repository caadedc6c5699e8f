package sqlite

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo avisos sobre SQLite.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create inserta un aviso no leído.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO asset_notifications (type, asset_id, asset_name, asset_code, category_id, message,
			created_at, priority, is_read)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.Type, n.AssetID, n.AssetName, n.AssetCode, n.CategoryID, n.Message,
		formatTS(n.CreatedAt), n.Priority, n.Read,
	)
	if err != nil {
		return wrap("insert notification", err)
	}
	if n.ID, err = res.LastInsertId(); err != nil {
		return wrap("insert notification id", err)
	}
	return nil
}

// List avisos del más reciente al más antiguo.
func (r *NotificationRepo) List(ctx context.Context, onlyUnread bool, limit, offset int) ([]*entity.Notification, error) {
	query := `SELECT id, type, asset_id, asset_name, asset_code, category_id, message, created_at, priority, is_read
		FROM asset_notifications`
	if onlyUnread {
		query += ` WHERE is_read = 0`
	}
	query += ` ORDER BY id DESC LIMIT ? OFFSET ?`
	rows, err := r.q.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, wrap("list notifications", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		var ts string
		if err := rows.Scan(&n.ID, &n.Type, &n.AssetID, &n.AssetName, &n.AssetCode, &n.CategoryID,
			&n.Message, &ts, &n.Priority, &n.Read); err != nil {
			return nil, wrap("scan notification", err)
		}
		if n.CreatedAt, err = parseTS(ts); err != nil {
			return nil, wrap("parse created_at", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca el aviso como leído; devuelve filas afectadas.
func (r *NotificationRepo) MarkRead(ctx context.Context, id int64) (int64, error) {
	res, err := r.q.ExecContext(ctx, `UPDATE asset_notifications SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		return 0, wrap("mark notification read", err)
	}
	return res.RowsAffected()
}
