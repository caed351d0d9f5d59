package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/caseritos/caseritos-api/internal/domain/entity"
	"github.com/caseritos/caseritos-api/internal/domain/repository"
)

var _ repository.OfferRepository = (*OfferRepo)(nil)

// OfferRepo implementación del puerto OfferRepository sobre PostgreSQL (usable con pool o tx).
type OfferRepo struct {
	q Querier
}

// NewOfferRepository construye el adaptador de persistencia para ofertas. Pasar pool o tx (Querier).
func NewOfferRepository(q Querier) *OfferRepo {
	return &OfferRepo{q: q}
}

const offerColumns = `id, seller_id, title, description, price, qty, location, status, buyer_id, sold_at, created_at`

func scanOffer(row pgx.Row, o *entity.Offer) error {
	return row.Scan(
		&o.ID, &o.SellerID, &o.Title, &o.Description, &o.Price, &o.Qty,
		&o.Location, &o.Status, &o.BuyerID, &o.SoldAt, &o.CreatedAt,
	)
}

// Create persiste una nueva oferta (status active).
func (r *OfferRepo) Create(offer *entity.Offer) error {
	query := `
		INSERT INTO offers (id, seller_id, title, description, price, qty, location, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		offer.ID, offer.SellerID, offer.Title, offer.Description, offer.Price,
		offer.Qty, offer.Location, offer.Status, offer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}
	return nil
}

// GetByID obtiene una oferta por ID.
func (r *OfferRepo) GetByID(id string) (*entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`
	var o entity.Offer
	if err := scanOffer(r.q.QueryRow(context.Background(), query, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offer: %w", err)
	}
	return &o, nil
}

// GetForUpdate bloquea la fila de la oferta (SELECT ... FOR UPDATE). Dos
// compras concurrentes sobre la misma oferta se serializan aquí: la segunda
// espera el lock y observa el estado ya decrementado.
func (r *OfferRepo) GetForUpdate(id string) (*entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1 FOR UPDATE`
	var o entity.Offer
	if err := scanOffer(r.q.QueryRow(context.Background(), query, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offer for update: %w", err)
	}
	return &o, nil
}

// GetDetail obtiene la oferta con el contacto del vendedor.
func (r *OfferRepo) GetDetail(id string) (*entity.OfferDetail, error) {
	query := `
		SELECT o.id, o.seller_id, o.title, o.description, o.price, o.qty, o.location,
		       o.status, o.buyer_id, o.sold_at, o.created_at, u.name, u.phone
		FROM offers o JOIN users u ON u.id = o.seller_id
		WHERE o.id = $1`
	var d entity.OfferDetail
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.SellerID, &d.Title, &d.Description, &d.Price, &d.Qty, &d.Location,
		&d.Status, &d.BuyerID, &d.SoldAt, &d.CreatedAt, &d.SellerName, &d.SellerPhone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offer detail: %w", err)
	}
	return &d, nil
}

// Search lista ofertas activas con el vendedor, filtrando por substring
// case-insensitive en description y location, orden created_at DESC, paginado.
// Las vendidas quedan fuera del listado público.
func (r *OfferRepo) Search(f repository.OfferFilter) ([]*entity.OfferSummary, error) {
	query := `
		SELECT o.id, o.seller_id, o.title, o.description, o.price, o.qty, o.location,
		       o.status, o.buyer_id, o.sold_at, o.created_at, u.name
		FROM offers o JOIN users u ON u.id = o.seller_id
		WHERE o.status <> $1`
	args := []any{entity.OfferStatusSold}
	if f.Query != "" {
		args = append(args, "%"+strings.ToLower(f.Query)+"%")
		query += fmt.Sprintf(" AND LOWER(o.description) LIKE $%d", len(args))
	}
	if f.Location != "" {
		args = append(args, "%"+strings.ToLower(f.Location)+"%")
		query += fmt.Sprintf(" AND LOWER(o.location) LIKE $%d", len(args))
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY o.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search offers: %w", err)
	}
	defer rows.Close()
	var list []*entity.OfferSummary
	for rows.Next() {
		var s entity.OfferSummary
		if err := rows.Scan(&s.ID, &s.SellerID, &s.Title, &s.Description, &s.Price, &s.Qty,
			&s.Location, &s.Status, &s.BuyerID, &s.SoldAt, &s.CreatedAt, &s.SellerName); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// UpdateListing actualiza los campos de publicación (escape hatch del dueño;
// puede resetear qty directamente, fuera del ciclo de vida).
func (r *OfferRepo) UpdateListing(offer *entity.Offer) error {
	query := `
		UPDATE offers SET title = $2, description = $3, price = $4, qty = $5, location = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		offer.ID, offer.Title, offer.Description, offer.Price, offer.Qty, offer.Location,
	)
	if err != nil {
		return fmt.Errorf("update offer: %w", err)
	}
	return nil
}

// UpdateQty fija solo la cantidad (venta parcial; la oferta sigue active).
func (r *OfferRepo) UpdateQty(id string, qty int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE offers SET qty = $2 WHERE id = $1`,
		id, qty,
	)
	if err != nil {
		return fmt.Errorf("update offer qty: %w", err)
	}
	return nil
}

// MarkSold ejecuta la transición terminal en una sola sentencia:
// qty=0, status=sold, buyer_id y sold_at.
func (r *OfferRepo) MarkSold(id, buyerID string, soldAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE offers SET qty = 0, status = $2, buyer_id = $3, sold_at = $4 WHERE id = $1`,
		id, entity.OfferStatusSold, buyerID, soldAt,
	)
	if err != nil {
		return fmt.Errorf("mark offer sold: %w", err)
	}
	return nil
}

// ListByBuyer lista las ofertas compradas por un usuario, más recientes primero (historial).
func (r *OfferRepo) ListByBuyer(buyerID string) ([]*entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE buyer_id = $1 ORDER BY sold_at DESC`
	rows, err := r.q.Query(context.Background(), query, buyerID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Offer
	for rows.Next() {
		var o entity.Offer
		if err := rows.Scan(&o.ID, &o.SellerID, &o.Title, &o.Description, &o.Price, &o.Qty,
			&o.Location, &o.Status, &o.BuyerID, &o.SoldAt, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// ListAll lista todas las ofertas (incluye sold) con el vendedor, para admin.
func (r *OfferRepo) ListAll() ([]*entity.OfferSummary, error) {
	query := `
		SELECT o.id, o.seller_id, o.title, o.description, o.price, o.qty, o.location,
		       o.status, o.buyer_id, o.sold_at, o.created_at, u.name
		FROM offers o JOIN users u ON u.id = o.seller_id
		ORDER BY o.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()
	var list []*entity.OfferSummary
	for rows.Next() {
		var s entity.OfferSummary
		if err := rows.Scan(&s.ID, &s.SellerID, &s.Title, &s.Description, &s.Price, &s.Qty,
			&s.Location, &s.Status, &s.BuyerID, &s.SoldAt, &s.CreatedAt, &s.SellerName); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina una oferta por ID (dueño o admin).
func (r *OfferRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}
	return nil
}
