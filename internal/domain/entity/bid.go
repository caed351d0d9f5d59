package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bid representa una puja de un comprador contra una oferta. Inmutable una vez
// creada, salvo Accepted, que fija (a lo sumo una vez) la aceptación de la puja.
type Bid struct {
	ID        string
	OfferID   string
	UserID    string
	Price     decimal.Decimal // positivo; puede estar por debajo del precio de lista
	Accepted  bool
	CreatedAt time.Time
}

// BidWithBidder proyección de detalle: puja + contacto del pujador.
type BidWithBidder struct {
	Bid
	UserName  string
	UserPhone string
}

// BidWithOffer proyección de historial: puja + título de la oferta.
type BidWithOffer struct {
	Bid
	OfferTitle string
}
