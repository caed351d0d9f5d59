package repository

import "github.com/caseritos/caseritos-api/internal/domain/entity"

// BidRepository define el puerto de persistencia para Bid (DIP).
type BidRepository interface {
	Create(bid *entity.Bid) error
	GetByOfferAndID(offerID, bidID string) (*entity.Bid, error)
	MarkAccepted(id string) error
	// ListByOffer devuelve las pujas de una oferta con el contacto del pujador,
	// orden created_at DESC.
	ListByOffer(offerID string) ([]*entity.BidWithBidder, error)
	// ListByUser devuelve las pujas de un usuario con el título de la oferta,
	// orden created_at DESC (historial).
	ListByUser(userID string) ([]*entity.BidWithOffer, error)
}
