package paymentrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Exists(ctx context.Context, externalTxID, method string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM payments WHERE external_tx_id = $1 AND method = $2
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, externalTxID, method).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check payment", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// Create inserts the payment and reports false when (external_tx_id, method) is already taken.
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (bool, error) {
	query := `
        INSERT INTO payments (id, buyer_id, external_tx_id, method, amount, payout_number, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (external_tx_id, method) DO NOTHING
        RETURNING created_at
    `
	err := r.db.QueryRow(ctx, query,
		payment.ID, payment.BuyerID, payment.ExternalTxID, payment.Method,
		payment.Amount, payment.PayoutNumber, payment.CreatedAt,
	).Scan(&payment.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return false, err
	}
	return true, nil
}
