package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOfferRequest cuerpo de POST /api/offers. Qty por defecto es 1.
type CreateOfferRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Qty         *int             `json:"qty"`
	Location    string           `json:"location"`
}

// UpdateOfferRequest cuerpo de PUT /api/offers/:id. Solo los campos presentes
// se actualizan (semántica COALESCE); puede resetear qty directamente.
type UpdateOfferRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Qty         *int             `json:"qty"`
	Location    *string          `json:"location"`
}

// OfferResponse oferta para listados y respuestas de mutación.
type OfferResponse struct {
	ID          string          `json:"id"`
	SellerID    string          `json:"seller_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Qty         int             `json:"qty"`
	Location    string          `json:"location"`
	Status      string          `json:"status"`
	BuyerID     *string         `json:"buyer_id,omitempty"`
	SoldAt      *time.Time      `json:"sold_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	SellerName  string          `json:"seller_name,omitempty"`
}

// OfferDetailResponse detalle: oferta + contacto del vendedor + pujas.
type OfferDetailResponse struct {
	OfferResponse
	SellerPhone string        `json:"seller_phone"`
	Bids        []BidResponse `json:"bids"`
}

// BidRequest cuerpo de POST /api/offers/:id/bids.
type BidRequest struct {
	Price *decimal.Decimal `json:"price"`
}

// BidResponse puja; UserName/UserPhone solo en el detalle de oferta,
// OfferTitle solo en el historial.
type BidResponse struct {
	ID         string          `json:"id"`
	OfferID    string          `json:"offer_id"`
	UserID     string          `json:"user_id"`
	Price      decimal.Decimal `json:"price"`
	Accepted   bool            `json:"accepted"`
	CreatedAt  time.Time       `json:"created_at"`
	UserName   string          `json:"user_name,omitempty"`
	UserPhone  string          `json:"user_phone,omitempty"`
	OfferTitle string          `json:"offer_title,omitempty"`
}

// BuyResponse respuesta de POST /api/offers/:id/buy.
type BuyResponse struct {
	Ok    bool          `json:"ok"`
	Offer OfferResponse `json:"offer"`
}
