package usecase

import (
	"github.com/caseritos/caseritos-api/internal/application/dto"
	"github.com/caseritos/caseritos-api/internal/domain/repository"
)

// UserUseCase consultas del propio usuario (historial de pujas y compras).
type UserUseCase struct {
	bidRepo   repository.BidRepository
	offerRepo repository.OfferRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(bidRepo repository.BidRepository, offerRepo repository.OfferRepository) *UserUseCase {
	return &UserUseCase{bidRepo: bidRepo, offerRepo: offerRepo}
}

// History devuelve las pujas hechas por el usuario (con el título de la
// oferta) y las ofertas que compró, ambas descendentes por fecha.
func (uc *UserUseCase) History(userID string) (*dto.HistoryResponse, error) {
	bids, err := uc.bidRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	purchases, err := uc.offerRepo.ListByBuyer(userID)
	if err != nil {
		return nil, err
	}

	out := &dto.HistoryResponse{
		Bids:      make([]dto.BidResponse, 0, len(bids)),
		Purchases: make([]dto.OfferResponse, 0, len(purchases)),
	}
	for _, b := range bids {
		br := dto.BidResponseFrom(&b.Bid)
		br.OfferTitle = b.OfferTitle
		out.Bids = append(out.Bids, br)
	}
	for _, o := range purchases {
		out.Purchases = append(out.Purchases, dto.OfferResponseFrom(o))
	}
	return out, nil
}
