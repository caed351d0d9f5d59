package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/caseritos/caseritos-api/internal/application/dto"
	"github.com/caseritos/caseritos-api/internal/domain"
	"github.com/caseritos/caseritos-api/internal/domain/entity"
	"github.com/caseritos/caseritos-api/internal/domain/repository"
)

// OfferUseCase alta y edición directa de publicaciones. Update y Delete son la
// válvula de escape administrativa del dueño: mutan los campos de la
// publicación (incluida qty) sin pasar por el motor del ciclo de vida.
type OfferUseCase struct {
	offerRepo repository.OfferRepository
}

// NewOfferUseCase construye el caso de uso.
func NewOfferUseCase(offerRepo repository.OfferRepository) *OfferUseCase {
	return &OfferUseCase{offerRepo: offerRepo}
}

// Create publica una oferta nueva (status active). Qty por defecto 1.
func (uc *OfferUseCase) Create(seller domain.Identity, in dto.CreateOfferRequest) (*dto.OfferResponse, error) {
	if in.Title == "" || in.Description == "" || in.Price == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	qty := 1
	if in.Qty != nil {
		qty = *in.Qty
	}
	if qty < 0 {
		return nil, domain.ErrInvalidInput
	}

	offer := &entity.Offer{
		ID:          uuid.New().String(),
		SellerID:    seller.ID,
		Title:       in.Title,
		Description: in.Description,
		Price:       *in.Price,
		Qty:         qty,
		Location:    in.Location,
		Status:      entity.OfferStatusActive,
		CreatedAt:   time.Now(),
	}
	if err := uc.offerRepo.Create(offer); err != nil {
		return nil, err
	}
	out := dto.OfferResponseFrom(offer)
	return &out, nil
}

// Update edita los campos presentes de la publicación (semántica COALESCE).
// Solo el dueño; puede resetear qty directamente.
func (uc *OfferUseCase) Update(actor domain.Identity, id string, in dto.UpdateOfferRequest) (*dto.OfferResponse, error) {
	offer, err := uc.offerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.Authorize(actor, domain.Resource{Kind: "offer", OwnerID: offer.SellerID}, domain.ActionUpdate); err != nil {
		return nil, err
	}

	if in.Title != nil {
		offer.Title = *in.Title
	}
	if in.Description != nil {
		offer.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		offer.Price = *in.Price
	}
	if in.Qty != nil {
		if *in.Qty < 0 {
			return nil, domain.ErrInvalidInput
		}
		offer.Qty = *in.Qty
	}
	if in.Location != nil {
		offer.Location = *in.Location
	}

	if err := uc.offerRepo.UpdateListing(offer); err != nil {
		return nil, err
	}
	out := dto.OfferResponseFrom(offer)
	return &out, nil
}

// Delete elimina la publicación. Dueño o admin.
func (uc *OfferUseCase) Delete(actor domain.Identity, id string) error {
	offer, err := uc.offerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if offer == nil {
		return domain.ErrNotFound
	}
	if err := domain.Authorize(actor, domain.Resource{Kind: "offer", OwnerID: offer.SellerID}, domain.ActionDelete); err != nil {
		return err
	}
	return uc.offerRepo.Delete(id)
}
