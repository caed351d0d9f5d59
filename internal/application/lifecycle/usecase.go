package lifecycle

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/caseritos/caseritos-api/internal/domain"
	"github.com/caseritos/caseritos-api/internal/domain/entity"
	"github.com/caseritos/caseritos-api/internal/domain/repository"
)

// OfferLifecycleUseCase es el motor del ciclo de vida de una oferta: compra
// directa, registro de pujas y aceptación de pujas. Las mutaciones de
// qty/status corren dentro de una transacción con bloqueo de fila
// (GetForUpdate); las notificaciones se emiten después del commit, por fuera
// de la transacción.
type OfferLifecycleUseCase struct {
	txRunner  TxRunner
	offerRepo repository.OfferRepository
	bidRepo   repository.BidRepository
	userRepo  repository.UserRepository
	notifier  Notifier
}

// NewOfferLifecycleUseCase construye el motor.
func NewOfferLifecycleUseCase(
	txRunner TxRunner,
	offerRepo repository.OfferRepository,
	bidRepo repository.BidRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
) *OfferLifecycleUseCase {
	return &OfferLifecycleUseCase{
		txRunner:  txRunner,
		offerRepo: offerRepo,
		bidRepo:   bidRepo,
		userRepo:  userRepo,
		notifier:  notifier,
	}
}

// SubmitBid registra una puja contra una oferta y notifica al vendedor con el
// contacto del pujador. No toca qty ni status. No se exige que el pujador sea
// distinto del vendedor, ni que el precio supere el de lista, ni que la oferta
// siga activa: una puja sobre una oferta vendida se registra igual.
func (uc *OfferLifecycleUseCase) SubmitBid(ctx context.Context, offerID string, bidder domain.Identity, price decimal.Decimal) (*entity.Bid, error) {
	if !price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	offer, err := uc.offerRepo.GetByID(offerID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrNotFound
	}

	bid := &entity.Bid{
		ID:        uuid.New().String(),
		OfferID:   offerID,
		UserID:    bidder.ID,
		Price:     price,
		Accepted:  false,
		CreatedAt: time.Now(),
	}
	if err := uc.bidRepo.Create(bid); err != nil {
		return nil, err
	}

	uc.notifier.Append(offer.SellerID, entity.NewBidPlaced(offer, bid, bidder.Name, bidder.Phone))
	return bid, nil
}

// BuyNow compra una unidad al precio de lista. Bajo el lock de fila decrementa
// qty (piso 0); al llegar a 0 la oferta pasa a sold con buyer_id y sold_at.
// Dos compras concurrentes con qty=1 se serializan: una vende, la otra observa
// status=sold y recibe ErrConflict.
func (uc *OfferLifecycleUseCase) BuyNow(ctx context.Context, offerID string, buyer domain.Identity) (*entity.Offer, error) {
	var offer *entity.Offer
	err := uc.txRunner.Run(ctx, func(offers repository.OfferRepository, _ repository.BidRepository) error {
		o, err := offers.GetForUpdate(offerID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if o.SellerID == buyer.ID {
			return domain.ErrSelfPurchase
		}
		if o.Sold() {
			return domain.ErrConflict
		}

		newQty := o.Qty - 1
		if newQty < 0 {
			newQty = 0
		}
		now := time.Now()
		if newQty == 0 {
			if err := offers.MarkSold(o.ID, buyer.ID, now); err != nil {
				return err
			}
			buyerID := buyer.ID
			o.Qty = 0
			o.Status = entity.OfferStatusSold
			o.BuyerID = &buyerID
			o.SoldAt = &now
		} else {
			if err := offers.UpdateQty(o.ID, newQty); err != nil {
				return err
			}
			o.Qty = newQty
		}
		offer = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Fan-out fuera de la transacción: la venta ya está confirmada y un fallo
	// al notificar no la revierte.
	sellerName, sellerPhone := uc.contact(offer.SellerID)
	if offer.Sold() {
		uc.notifier.Append(offer.SellerID, entity.NewSold(offer, buyer.ID, buyer.Name, buyer.Phone))
	} else {
		uc.notifier.Append(offer.SellerID, entity.NewPartialSale(offer, buyer.ID, buyer.Name, buyer.Phone, offer.Qty))
	}
	uc.notifier.Append(buyer.ID, entity.NewPurchase(offer, sellerName, sellerPhone, offer.Qty))
	return offer, nil
}

// AcceptBid acepta una puja: solo el vendedor, solo mientras la oferta no esté
// vendida. Marca la puja aceptada y decrementa qty; newQty <= 0 fuerza la venta
// total con buyer_id = dueño de la puja. El chequeo de sold corre bajo el mismo
// lock que usa BuyNow, así que una venta directa concurrente no puede colarse
// entre la lectura y la escritura.
func (uc *OfferLifecycleUseCase) AcceptBid(ctx context.Context, offerID, bidID string, seller domain.Identity) error {
	var offer *entity.Offer
	var bid *entity.Bid
	err := uc.txRunner.Run(ctx, func(offers repository.OfferRepository, bids repository.BidRepository) error {
		o, err := offers.GetForUpdate(offerID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if o.SellerID != seller.ID {
			return domain.ErrForbidden
		}
		b, err := bids.GetByOfferAndID(offerID, bidID)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}
		if o.Sold() {
			return domain.ErrConflict
		}

		if err := bids.MarkAccepted(b.ID); err != nil {
			return err
		}
		b.Accepted = true

		newQty := o.Qty - 1
		now := time.Now()
		if newQty <= 0 {
			if err := offers.MarkSold(o.ID, b.UserID, now); err != nil {
				return err
			}
			buyerID := b.UserID
			o.Qty = 0
			o.Status = entity.OfferStatusSold
			o.BuyerID = &buyerID
			o.SoldAt = &now
		} else {
			if err := offers.UpdateQty(o.ID, newQty); err != nil {
				return err
			}
			o.Qty = newQty
		}
		offer, bid = o, b
		return nil
	})
	if err != nil {
		return err
	}

	bidderName, bidderPhone := uc.contact(bid.UserID)
	uc.notifier.Append(bid.UserID, entity.NewBidAccepted(offer, bid, seller.Name, seller.Phone))
	uc.notifier.Append(offer.SellerID, entity.NewBidConfirmed(offer, bid, bidderName, bidderPhone))
	return nil
}

// contact resuelve nombre y teléfono de un usuario para el payload de la
// notificación. Si el usuario no se puede leer, se notifica sin contacto (el
// render usa el fallback).
func (uc *OfferLifecycleUseCase) contact(userID string) (name, phone string) {
	u, err := uc.userRepo.GetByID(userID)
	if err != nil || u == nil {
		return "", ""
	}
	return u.Name, u.Phone
}
