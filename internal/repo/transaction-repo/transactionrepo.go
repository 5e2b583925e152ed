package transactionrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/pg"
	"github.com/google/uuid"
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

func (r *Repository) Create(ctx context.Context, t *domain.Transaction) error {
	query := `
        INSERT INTO transactions (id, user_id, type, amount, method, status, order_id, payment_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	_, err := r.db.Exec(ctx, query, t.ID, t.UserID, t.Type, t.Amount, t.Method, t.Status,
		t.OrderID, t.PaymentID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `
        SELECT id, user_id, type, amount, method, status, order_id, payment_id, created_at, updated_at
        FROM transactions
        WHERE id = $1
    `
	var t domain.Transaction
	err := r.db.QueryRow(ctx, query, id).Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Method,
		&t.Status, &t.OrderID, &t.PaymentID, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

// SetStatus moves the transaction from one status to another and reports whether it was in from.
func (r *Repository) SetStatus(ctx context.Context, id uuid.UUID, from, to domain.TransactionStatus) (bool, error) {
	query := `
        UPDATE transactions
        SET status = $3, updated_at = NOW()
        WHERE id = $1 AND status = $2
    `
	tag, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		zap.L().Error("failed to update transaction status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// CompleteOrderPayment closes the pending escrow credit of an order.
func (r *Repository) CompleteOrderPayment(ctx context.Context, orderID uuid.UUID) (bool, error) {
	query := `
        UPDATE transactions
        SET status = $2, updated_at = NOW()
        WHERE order_id = $1 AND method = $3 AND status = $4
    `
	tag, err := r.db.Exec(ctx, query, orderID, domain.TransactionCompleted, domain.MethodOrderPayment, domain.TransactionPending)
	if err != nil {
		zap.L().Error("failed to complete escrow transaction", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
