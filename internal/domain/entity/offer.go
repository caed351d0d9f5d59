package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Offer. "sold" es terminal: ninguna operación pública del ciclo de
// vida sale de él (solo la edición directa del dueño puede tocar qty).
const (
	OfferStatusActive = "active"
	OfferStatusSold   = "sold"
)

// Offer representa una publicación de un vendedor: una cantidad de un artículo
// a un precio de lista. Invariante: Status=sold ⇔ Qty=0 ∧ BuyerID≠nil ∧ SoldAt≠nil.
// Qty solo decrece por compra directa o aceptación de puja; nunca se repone por
// esos caminos.
type Offer struct {
	ID          string
	SellerID    string
	Title       string
	Description string
	Price       decimal.Decimal // precio de lista, no negativo
	Qty         int
	Location    string
	Status      string
	BuyerID     *string // se fija una sola vez, al pasar a sold
	SoldAt      *time.Time
	CreatedAt   time.Time
}

// Sold indica si la oferta ya fue vendida.
func (o *Offer) Sold() bool {
	return o.Status == OfferStatusSold
}

// OfferSummary proyección de listado: oferta + nombre del vendedor.
type OfferSummary struct {
	Offer
	SellerName string
}

// OfferDetail proyección de detalle: oferta + contacto del vendedor.
type OfferDetail struct {
	Offer
	SellerName  string
	SellerPhone string
}
