package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de notificación (conjunto cerrado). Cada transición del ciclo de vida
// emite uno de estos; el texto humano se genera al consumir el feed, no al crear.
const (
	NotificationBid          = "bid"           // al vendedor: nueva puja
	NotificationSale         = "sale"          // al vendedor: venta total por compra directa
	NotificationPartialSale  = "partial_sale"  // al vendedor: venta de 1 unidad, quedan más
	NotificationPurchase     = "purchase"      // al comprador: confirmación de compra
	NotificationBidAccepted  = "bid_accepted"  // al pujador: su puja fue aceptada
	NotificationBidConfirmed = "bid_confirmed" // al vendedor: confirmación de aceptación
)

// NotificationPayload variante etiquetada con campos tipados; se persiste como
// JSONB y se renderiza a texto en la capa de consumo.
type NotificationPayload struct {
	Type         string          `json:"type"`
	OfferID      string          `json:"offer_id,omitempty"`
	OfferTitle   string          `json:"offer_title,omitempty"`
	BidID        string          `json:"bid_id,omitempty"`
	BidderID     string          `json:"bidder_id,omitempty"`
	BuyerID      string          `json:"buyer_id,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Remaining    int             `json:"remaining,omitempty"`
	ContactName  string          `json:"contact_name,omitempty"`
	ContactPhone string          `json:"contact_phone,omitempty"`
}

// Notification mensaje dirigido a un usuario, creado solo como efecto de una
// transición del ciclo de vida. Solo el destinatario puede marcarlo leído.
type Notification struct {
	ID        string
	UserID    string // destinatario
	Payload   NotificationPayload
	Read      bool
	CreatedAt time.Time
}

// NewBidPlaced notifica al vendedor una puja nueva, con el contacto del pujador.
func NewBidPlaced(offer *Offer, bid *Bid, bidderName, bidderPhone string) NotificationPayload {
	return NotificationPayload{
		Type:         NotificationBid,
		OfferID:      offer.ID,
		OfferTitle:   offer.Title,
		BidID:        bid.ID,
		BidderID:     bid.UserID,
		Price:        bid.Price,
		ContactName:  bidderName,
		ContactPhone: bidderPhone,
	}
}

// NewSold notifica al vendedor la venta total por compra directa.
func NewSold(offer *Offer, buyerID, buyerName, buyerPhone string) NotificationPayload {
	return NotificationPayload{
		Type:         NotificationSale,
		OfferID:      offer.ID,
		OfferTitle:   offer.Title,
		BuyerID:      buyerID,
		Price:        offer.Price,
		ContactName:  buyerName,
		ContactPhone: buyerPhone,
	}
}

// NewPartialSale notifica al vendedor la venta de una unidad con stock restante.
func NewPartialSale(offer *Offer, buyerID, buyerName, buyerPhone string, remaining int) NotificationPayload {
	return NotificationPayload{
		Type:         NotificationPartialSale,
		OfferID:      offer.ID,
		OfferTitle:   offer.Title,
		BuyerID:      buyerID,
		Price:        offer.Price,
		Remaining:    remaining,
		ContactName:  buyerName,
		ContactPhone: buyerPhone,
	}
}

// NewPurchase notifica al comprador su compra (total si remaining es 0), con el
// contacto del vendedor.
func NewPurchase(offer *Offer, sellerName, sellerPhone string, remaining int) NotificationPayload {
	return NotificationPayload{
		Type:         NotificationPurchase,
		OfferID:      offer.ID,
		OfferTitle:   offer.Title,
		Price:        offer.Price,
		Remaining:    remaining,
		ContactName:  sellerName,
		ContactPhone: sellerPhone,
	}
}

// NewBidAccepted notifica al pujador que su puja fue aceptada, con el contacto
// del vendedor.
func NewBidAccepted(offer *Offer, bid *Bid, sellerName, sellerPhone string) NotificationPayload {
	return NotificationPayload{
		Type:         NotificationBidAccepted,
		OfferID:      offer.ID,
		OfferTitle:   offer.Title,
		BidID:        bid.ID,
		Price:        bid.Price,
		ContactName:  sellerName,
		ContactPhone: sellerPhone,
	}
}

// NewBidConfirmed confirma al vendedor la puja que aceptó, con el contacto del
// comprador.
func NewBidConfirmed(offer *Offer, bid *Bid, buyerName, buyerPhone string) NotificationPayload {
	return NotificationPayload{
		Type:         NotificationBidConfirmed,
		OfferID:      offer.ID,
		OfferTitle:   offer.Title,
		BidID:        bid.ID,
		BidderID:     bid.UserID,
		Price:        bid.Price,
		ContactName:  buyerName,
		ContactPhone: buyerPhone,
	}
}
