package usecase

import (
	"fmt"

	"github.com/caseritos/caseritos-api/internal/application/dto"
	"github.com/caseritos/caseritos-api/internal/domain/entity"
	"github.com/caseritos/caseritos-api/internal/domain/repository"
)

// NotificationUseCase feed de notificaciones del destinatario. El payload se
// guarda tipado; el texto humano se renderiza aquí, en el borde de consumo.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// ListForUser devuelve las notificaciones del usuario, más recientes primero,
// con el mensaje ya renderizado.
func (uc *NotificationUseCase) ListForUser(userID string) ([]dto.NotificationResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Type:      n.Payload.Type,
			Message:   RenderMessage(n.Payload),
			OfferID:   n.Payload.OfferID,
			BidID:     n.Payload.BidID,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}

// MarkRead marca leída una notificación del propio usuario. Si el id no existe
// o pertenece a otro destinatario no pasa nada (acuse igual).
func (uc *NotificationUseCase) MarkRead(userID, id string) error {
	return uc.repo.MarkRead(id, userID)
}

// RenderMessage genera el texto humano de una variante de notificación.
func RenderMessage(p entity.NotificationPayload) string {
	contact := p.ContactPhone
	if contact == "" {
		contact = "No indicado"
	}
	switch p.Type {
	case entity.NotificationBid:
		return fmt.Sprintf("Nueva puja de $%s en %q. Teléfono del pujador: %s", p.Price.String(), p.OfferTitle, contact)
	case entity.NotificationSale:
		return fmt.Sprintf("Tu oferta %q fue vendida por compra directa. Teléfono del comprador: %s", p.OfferTitle, contact)
	case entity.NotificationPartialSale:
		return fmt.Sprintf("Se vendió 1 unidad de %q. Quedan %d. Teléfono del comprador: %s", p.OfferTitle, p.Remaining, contact)
	case entity.NotificationPurchase:
		if p.Remaining > 0 {
			return fmt.Sprintf("Compraste 1 unidad de %q. Quedan %d. Teléfono del vendedor: %s", p.OfferTitle, p.Remaining, contact)
		}
		return fmt.Sprintf("Compraste %q. Teléfono del vendedor: %s", p.OfferTitle, contact)
	case entity.NotificationBidAccepted:
		return fmt.Sprintf("Tu puja de $%s fue aceptada para la oferta %q. Teléfono del vendedor: %s", p.Price.String(), p.OfferTitle, contact)
	case entity.NotificationBidConfirmed:
		return fmt.Sprintf("Aceptaste la puja de $%s para %q. Teléfono del comprador: %s", p.Price.String(), p.OfferTitle, contact)
	}
	return p.Type
}
