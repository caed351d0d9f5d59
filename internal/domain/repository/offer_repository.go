package repository

import (
	"time"

	"github.com/caseritos/caseritos-api/internal/domain/entity"
)

// OfferFilter filtros del listado público. Query y Location hacen match de
// substring case-insensitive sobre description y location respectivamente.
type OfferFilter struct {
	Query    string
	Location string
	Limit    int
	Offset   int
}

// OfferRepository define el puerto de persistencia para Offer (DIP).
// GetForUpdate solo tiene sentido dentro de una transacción (row lock).
type OfferRepository interface {
	Create(offer *entity.Offer) error
	GetByID(id string) (*entity.Offer, error)
	// GetForUpdate bloquea la fila de la oferta (SELECT ... FOR UPDATE) para
	// serializar el decremento de qty entre compras/aceptaciones concurrentes.
	GetForUpdate(id string) (*entity.Offer, error)
	GetDetail(id string) (*entity.OfferDetail, error)
	// Search lista ofertas activas (excluye sold) con el vendedor, orden
	// created_at DESC, paginado.
	Search(f OfferFilter) ([]*entity.OfferSummary, error)
	// UpdateListing actualiza los campos de publicación (título, descripción,
	// precio, qty, location) sin pasar por el ciclo de vida.
	UpdateListing(offer *entity.Offer) error
	UpdateQty(id string, qty int) error
	// MarkSold fija qty=0, status=sold, buyer_id y sold_at en una sola sentencia.
	MarkSold(id, buyerID string, soldAt time.Time) error
	ListByBuyer(buyerID string) ([]*entity.Offer, error)
	// ListAll lista todas las ofertas (incluye sold) con el vendedor, para admin.
	ListAll() ([]*entity.OfferSummary, error)
	Delete(id string) error
}
