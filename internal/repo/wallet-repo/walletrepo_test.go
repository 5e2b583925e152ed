package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_GetSummary(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	query := regexp.QuoteMeta(`FROM users u WHERE u.id = $1`)
	args := []any{userID, domain.OrderStatusPaid, domain.OrderStatusCompleted, domain.WithdrawalPending, domain.WithdrawalCompleted}
	columns := []string{"id", "balance", "earnings", "pending_orders", "completed_orders", "pending_balance", "total_earned", "pending_withdrawals", "total_withdrawn"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name: "Seller summary",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(userID, int64(13900), int64(15000), 0, 1, int64(5000), int64(15000), int64(1000), int64(0))
				mock.ExpectQuery(query).WithArgs(args...).WillReturnRows(rows)
			},
			result: &domain.Wallet{
				UserID:             userID,
				Balance:            13900,
				Earnings:           15000,
				PendingOrders:      0,
				CompletedOrders:    1,
				PendingBalance:     5000,
				TotalEarned:        15000,
				PendingWithdrawals: 1000,
				TotalWithdrawn:     0,
			},
		},
		{
			name: "Unknown user",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetSummary(context.Background(), userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetSummary_PendingWithdrawalsExcludeFee(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	columns := []string{"id", "balance", "earnings", "pending_orders", "completed_orders", "pending_balance", "total_earned", "pending_withdrawals", "total_withdrawn"}

	pending := regexp.QuoteMeta(`SUM(w.amount) FROM withdrawals w WHERE w.user_id = u.id AND w.status = $4`)
	withdrawn := regexp.QuoteMeta(`SUM(w.amount) FROM withdrawals w WHERE w.user_id = u.id AND w.status = $5`)
	mock.ExpectQuery(pending + `.*` + withdrawn).
		WithArgs(userID, domain.OrderStatusPaid, domain.OrderStatusCompleted, domain.WithdrawalPending, domain.WithdrawalCompleted).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(userID, int64(0), int64(0), 0, 0, int64(0), int64(0), int64(1000), int64(500)))

	result, err := repo.GetSummary(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(1000), result.PendingWithdrawals)
	assert.Equal(t, int64(500), result.TotalWithdrawn)
	assert.NoError(t, mock.ExpectationsWereMet())
}
