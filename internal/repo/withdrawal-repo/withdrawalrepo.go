package withdrawalrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const withdrawalColumns = `id, user_id, transaction_id, amount, fee, method, destination_number, status, note, settled_by, created_at, settled_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	var w domain.Withdrawal
	err := row.Scan(&w.ID, &w.UserID, &w.TransactionID, &w.Amount, &w.Fee, &w.Method,
		&w.DestinationNumber, &w.Status, &w.Note, &w.SettledBy, &w.CreatedAt, &w.SettledAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) Create(ctx context.Context, w *domain.Withdrawal) error {
	query := `
        INSERT INTO withdrawals (id, user_id, transaction_id, amount, fee, method, destination_number, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err := r.db.Exec(ctx, query, w.ID, w.UserID, w.TransactionID, w.Amount, w.Fee,
		w.Method, w.DestinationNumber, w.Status, w.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return err
	}
	return nil
}

// LockByID reads the withdrawal with a row lock held until the surrounding transaction ends.
func (r *Repository) LockByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1 FOR UPDATE`
	w, err := scanWithdrawal(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock withdrawal", zap.Error(err))
		return nil, err
	}
	return w, nil
}

// Settle finalizes a pending withdrawal. It returns nil when the withdrawal is no longer pending.
func (r *Repository) Settle(ctx context.Context, id uuid.UUID, status domain.WithdrawalStatus, note *string, settledBy uuid.UUID) (*domain.Withdrawal, error) {
	query := `
        UPDATE withdrawals
        SET status = $2, note = $3, settled_by = $4, settled_at = NOW()
        WHERE id = $1 AND status = $5
        RETURNING ` + withdrawalColumns
	w, err := scanWithdrawal(r.db.QueryRow(ctx, query, id, status, note, settledBy, domain.WithdrawalPending))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to settle withdrawal", zap.Error(err))
		return nil, err
	}
	return w, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Withdrawal, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawals
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.list(ctx, query, userID)
}

func (r *Repository) FindPending(ctx context.Context) ([]domain.Withdrawal, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawals
        WHERE status = $1
        ORDER BY created_at ASC
    `
	return r.list(ctx, query, domain.WithdrawalPending)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Withdrawal, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("can't scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *w)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate withdrawal rows", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
