package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caseritos/caseritos-api/internal/domain/entity"
	"github.com/caseritos/caseritos-api/internal/domain/repository"
)

var _ repository.BidRepository = (*BidRepo)(nil)

// BidRepo implementación del puerto BidRepository sobre PostgreSQL (usable con pool o tx).
type BidRepo struct {
	q Querier
}

// NewBidRepository construye el adaptador de persistencia para pujas. Pasar pool o tx (Querier).
func NewBidRepository(q Querier) *BidRepo {
	return &BidRepo{q: q}
}

// Create persiste una nueva puja (accepted=false).
func (r *BidRepo) Create(bid *entity.Bid) error {
	query := `
		INSERT INTO bids (id, offer_id, user_id, price, accepted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		bid.ID, bid.OfferID, bid.UserID, bid.Price, bid.Accepted, bid.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bid: %w", err)
	}
	return nil
}

// GetByOfferAndID obtiene una puja verificando que pertenezca a la oferta.
func (r *BidRepo) GetByOfferAndID(offerID, bidID string) (*entity.Bid, error) {
	query := `
		SELECT id, offer_id, user_id, price, accepted, created_at
		FROM bids WHERE id = $1 AND offer_id = $2`
	var b entity.Bid
	err := r.q.QueryRow(context.Background(), query, bidID, offerID).Scan(
		&b.ID, &b.OfferID, &b.UserID, &b.Price, &b.Accepted, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bid: %w", err)
	}
	return &b, nil
}

// MarkAccepted fija accepted=true (se hace a lo sumo una vez, por acceptBid).
func (r *BidRepo) MarkAccepted(id string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE bids SET accepted = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark bid accepted: %w", err)
	}
	return nil
}

// ListByOffer devuelve las pujas de una oferta con el contacto del pujador, más recientes primero.
func (r *BidRepo) ListByOffer(offerID string) ([]*entity.BidWithBidder, error) {
	query := `
		SELECT b.id, b.offer_id, b.user_id, b.price, b.accepted, b.created_at, u.name, u.phone
		FROM bids b JOIN users u ON u.id = b.user_id
		WHERE b.offer_id = $1 ORDER BY b.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, offerID)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	defer rows.Close()
	var list []*entity.BidWithBidder
	for rows.Next() {
		var b entity.BidWithBidder
		if err := rows.Scan(&b.ID, &b.OfferID, &b.UserID, &b.Price, &b.Accepted, &b.CreatedAt,
			&b.UserName, &b.UserPhone); err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// ListByUser devuelve las pujas hechas por un usuario con el título de la oferta (historial).
func (r *BidRepo) ListByUser(userID string) ([]*entity.BidWithOffer, error) {
	query := `
		SELECT b.id, b.offer_id, b.user_id, b.price, b.accepted, b.created_at, o.title
		FROM bids b JOIN offers o ON o.id = b.offer_id
		WHERE b.user_id = $1 ORDER BY b.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list user bids: %w", err)
	}
	defer rows.Close()
	var list []*entity.BidWithOffer
	for rows.Next() {
		var b entity.BidWithOffer
		if err := rows.Scan(&b.ID, &b.OfferID, &b.UserID, &b.Price, &b.Accepted, &b.CreatedAt,
			&b.OfferTitle); err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
