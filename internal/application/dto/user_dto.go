package dto

// HistoryResponse respuesta de GET /api/users/me/history.
type HistoryResponse struct {
	Bids      []BidResponse   `json:"bids"`
	Purchases []OfferResponse `json:"purchases"`
}

// AdminUpdateUserRequest cuerpo de PUT /api/admin/users/:id. Solo los campos
// presentes se actualizan.
type AdminUpdateUserRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Role  *string `json:"role"`
}
