package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/caseritos/caseritos-api/internal/domain/entity"
	"github.com/caseritos/caseritos-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
// El payload tipado se persiste como JSONB.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de persistencia para notificaciones.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una notificación dirigida.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	payload, err := json.Marshal(n.Payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	query := `
		INSERT INTO notifications (id, user_id, payload, read, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err = r.q.Exec(context.Background(), query,
		n.ID, n.UserID, payload, n.Read, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListByUser devuelve las notificaciones del destinatario, más recientes primero.
func (r *NotificationRepo) ListByUser(userID string) ([]*entity.Notification, error) {
	query := `
		SELECT id, user_id, payload, read, created_at
		FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		var raw []byte
		if err := rows.Scan(&n.ID, &n.UserID, &raw, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		if err := json.Unmarshal(raw, &n.Payload); err != nil {
			return nil, fmt.Errorf("unmarshal payload: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca leída solo si la notificación pertenece al destinatario.
func (r *NotificationRepo) MarkRead(id, userID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}
