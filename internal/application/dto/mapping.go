package dto

import "github.com/caseritos/caseritos-api/internal/domain/entity"

// UserResponseFrom proyecta un User sin el hash de contraseña.
func UserResponseFrom(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// OfferResponseFrom proyecta una Offer.
func OfferResponseFrom(o *entity.Offer) OfferResponse {
	return OfferResponse{
		ID:          o.ID,
		SellerID:    o.SellerID,
		Title:       o.Title,
		Description: o.Description,
		Price:       o.Price,
		Qty:         o.Qty,
		Location:    o.Location,
		Status:      o.Status,
		BuyerID:     o.BuyerID,
		SoldAt:      o.SoldAt,
		CreatedAt:   o.CreatedAt,
	}
}

// OfferSummaryResponseFrom proyecta una OfferSummary (incluye el vendedor).
func OfferSummaryResponseFrom(s *entity.OfferSummary) OfferResponse {
	out := OfferResponseFrom(&s.Offer)
	out.SellerName = s.SellerName
	return out
}

// BidResponseFrom proyecta una Bid.
func BidResponseFrom(b *entity.Bid) BidResponse {
	return BidResponse{
		ID:        b.ID,
		OfferID:   b.OfferID,
		UserID:    b.UserID,
		Price:     b.Price,
		Accepted:  b.Accepted,
		CreatedAt: b.CreatedAt,
	}
}
