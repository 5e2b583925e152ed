package walletrepo

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

// GetSummary reads the seller's counters and aggregates their orders and withdrawals.
func (r *Repository) GetSummary(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `
        SELECT u.id, u.balance, u.earnings, u.pending_orders, u.completed_orders,
            COALESCE((SELECT SUM(o.amount) FROM orders o WHERE o.seller_id = u.id AND o.status = $2), 0),
            COALESCE((SELECT SUM(o.amount) FROM orders o WHERE o.seller_id = u.id AND o.status = $3), 0),
            COALESCE((SELECT SUM(w.amount) FROM withdrawals w WHERE w.user_id = u.id AND w.status = $4), 0),
            COALESCE((SELECT SUM(w.amount) FROM withdrawals w WHERE w.user_id = u.id AND w.status = $5), 0)
        FROM users u
        WHERE u.id = $1
    `
	var wallet domain.Wallet
	err := r.db.QueryRow(ctx, query, userID,
		domain.OrderStatusPaid, domain.OrderStatusCompleted,
		domain.WithdrawalPending, domain.WithdrawalCompleted,
	).Scan(&wallet.UserID, &wallet.Balance, &wallet.Earnings, &wallet.PendingOrders, &wallet.CompletedOrders,
		&wallet.PendingBalance, &wallet.TotalEarned, &wallet.PendingWithdrawals, &wallet.TotalWithdrawn)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get wallet summary", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}
