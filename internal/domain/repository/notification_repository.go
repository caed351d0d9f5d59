package repository

import "github.com/caseritos/caseritos-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para Notification (DIP).
type NotificationRepository interface {
	Create(n *entity.Notification) error
	ListByUser(userID string) ([]*entity.Notification, error)
	// MarkRead marca leída la notificación solo si pertenece al destinatario.
	MarkRead(id, userID string) error
}
