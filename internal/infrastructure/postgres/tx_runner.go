package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caseritos/caseritos-api/internal/application/lifecycle"
	"github.com/caseritos/caseritos-api/internal/domain/repository"
)

// Ensure TxRunner implements lifecycle.TxRunner.
var _ lifecycle.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es la pieza
// que hace atómico el "decrementar-y-transicionar" del ciclo de vida: los repos
// que recibe el callback están atados a la tx, y GetForUpdate bloquea la fila.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	offerRepo repository.OfferRepository,
	bidRepo repository.BidRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	offerRepo := NewOfferRepository(tx)
	bidRepo := NewBidRepository(tx)

	if err := fn(offerRepo, bidRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
