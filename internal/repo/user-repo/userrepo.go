package userrepo

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

func (repo *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
        SELECT id, role, balance, earnings, pending_orders, completed_orders
        FROM users
        WHERE id = $1
    `
	var user domain.User
	err := repo.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Role, &user.Balance, &user.Earnings, &user.PendingOrders, &user.CompletedOrders)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// CreditSettlement releases an escrowed order amount to the seller.
func (repo *Repository) CreditSettlement(ctx context.Context, sellerID uuid.UUID, amount int64) (bool, error) {
	query := `
        UPDATE users
        SET balance = balance + $2,
            earnings = earnings + $2,
            completed_orders = completed_orders + 1,
            pending_orders = GREATEST(pending_orders - 1, 0)
        WHERE id = $1
    `
	tag, err := repo.db.Exec(ctx, query, sellerID, amount)
	if err != nil {
		zap.L().Error("failed to credit seller", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Reserve debits total only if the balance covers it.
func (repo *Repository) Reserve(ctx context.Context, userID uuid.UUID, total int64) (bool, error) {
	query := `
        UPDATE users
        SET balance = balance - $2
        WHERE id = $1 AND balance >= $2
    `
	tag, err := repo.db.Exec(ctx, query, userID, total)
	if err != nil {
		zap.L().Error("failed to reserve balance", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (repo *Repository) Refund(ctx context.Context, userID uuid.UUID, amount int64) (bool, error) {
	query := `
        UPDATE users
        SET balance = balance + $2
        WHERE id = $1
    `
	tag, err := repo.db.Exec(ctx, query, userID, amount)
	if err != nil {
		zap.L().Error("failed to refund balance", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
