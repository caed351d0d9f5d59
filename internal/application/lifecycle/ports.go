package lifecycle

import (
	"context"

	"github.com/caseritos/caseritos-api/internal/domain/entity"
	"github.com/caseritos/caseritos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el decremento de qty y la
// transición de estado de una oferta sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		offerRepo repository.OfferRepository,
		bidRepo repository.BidRepository,
	) error) error
}

// Notifier es el sink de notificaciones: append dirigido, fire-and-forget.
// Un fallo al escribir se registra y se absorbe; nunca revierte la transición
// que lo disparó.
type Notifier interface {
	Append(recipientID string, payload entity.NotificationPayload)
}
