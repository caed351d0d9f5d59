package dto

import "time"

// NotificationResponse notificación con el texto ya renderizado para el feed.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	OfferID   string    `json:"offer_id,omitempty"`
	BidID     string    `json:"bid_id,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
