package listing

import (
	"github.com/caseritos/caseritos-api/internal/application/dto"
	"github.com/caseritos/caseritos-api/internal/domain"
	"github.com/caseritos/caseritos-api/internal/domain/repository"
)

// ListingUseCase lado de lectura del marketplace: listado filtrado/paginado y
// detalle de oferta. Solo depende de los puertos de persistencia.
type ListingUseCase struct {
	offerRepo repository.OfferRepository
	bidRepo   repository.BidRepository
}

// NewListingUseCase construye el caso de uso de consultas.
func NewListingUseCase(offerRepo repository.OfferRepository, bidRepo repository.BidRepository) *ListingUseCase {
	return &ListingUseCase{offerRepo: offerRepo, bidRepo: bidRepo}
}

// Search lista ofertas activas (las vendidas quedan fuera), filtrando por
// substring case-insensitive en description y location, más recientes primero.
func (uc *ListingUseCase) Search(query, location string, limit, offset int) ([]dto.OfferResponse, error) {
	summaries, err := uc.offerRepo.Search(repository.OfferFilter{
		Query:    query,
		Location: location,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.OfferResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, dto.OfferSummaryResponseFrom(s))
	}
	return out, nil
}

// Detail devuelve la oferta con el contacto del vendedor y la lista de pujas
// descendente por fecha, con el contacto de cada pujador.
func (uc *ListingUseCase) Detail(id string) (*dto.OfferDetailResponse, error) {
	detail, err := uc.offerRepo.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	bids, err := uc.bidRepo.ListByOffer(id)
	if err != nil {
		return nil, err
	}

	out := &dto.OfferDetailResponse{
		OfferResponse: dto.OfferResponseFrom(&detail.Offer),
		SellerPhone:   detail.SellerPhone,
		Bids:          make([]dto.BidResponse, 0, len(bids)),
	}
	out.SellerName = detail.SellerName
	for _, b := range bids {
		br := dto.BidResponseFrom(&b.Bid)
		br.UserName = b.UserName
		br.UserPhone = b.UserPhone
		out.Bids = append(out.Bids, br)
	}
	return out, nil
}
