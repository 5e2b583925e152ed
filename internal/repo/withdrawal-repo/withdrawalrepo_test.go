package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var columns = []string{"id", "user_id", "transaction_id", "amount", "fee", "method", "destination_number", "status", "note", "settled_by", "created_at", "settled_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func testWithdrawal() domain.Withdrawal {
	return domain.Withdrawal{
		ID:                uuid.New(),
		UserID:            uuid.New(),
		TransactionID:     uuid.New(),
		Amount:            1000,
		Fee:               100,
		Method:            "bkash",
		DestinationNumber: "01700000000",
		Status:            domain.WithdrawalPending,
		CreatedAt:         time.Now(),
	}
}

func withdrawalRow(rows *pgxmock.Rows, w domain.Withdrawal) *pgxmock.Rows {
	return rows.AddRow(w.ID, w.UserID, w.TransactionID, w.Amount, w.Fee, w.Method, w.DestinationNumber,
		w.Status, w.Note, w.SettledBy, w.CreatedAt, w.SettledAt)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	w := testWithdrawal()
	query := regexp.QuoteMeta(`INSERT INTO withdrawals (id, user_id, transaction_id, amount, fee, method, destination_number, status, created_at)`)
	args := []any{w.ID, w.UserID, w.TransactionID, w.Amount, w.Fee, w.Method, w.DestinationNumber, w.Status, w.CreatedAt}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create withdrawal successfully",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(args...).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Create(context.Background(), &w)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_LockByID(t *testing.T) {
	repo, mock := NewMock(t)
	w := testWithdrawal()
	query := regexp.QuoteMeta(`FROM withdrawals WHERE id = $1 FOR UPDATE`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Withdrawal
	}{
		{
			name: "Withdrawal exists",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(w.ID).WillReturnRows(withdrawalRow(pgxmock.NewRows(columns), w))
			},
			result: &w,
		},
		{
			name: "Withdrawal does not exist",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(w.ID).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(w.ID).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.LockByID(context.Background(), w.ID)
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

func TestRepository_Settle(t *testing.T) {
	repo, mock := NewMock(t)
	operatorID := uuid.New()
	note := "destination rejected by provider"
	settledAt := time.Now()
	settled := testWithdrawal()
	settled.Status = domain.WithdrawalRejected
	settled.Note = &note
	settled.SettledBy = &operatorID
	settled.SettledAt = &settledAt
	query := regexp.QuoteMeta(`UPDATE withdrawals SET status = $2, note = $3, settled_by = $4, settled_at = NOW() WHERE id = $1 AND status = $5`)

	mock.ExpectQuery(query).
		WithArgs(settled.ID, domain.WithdrawalRejected, &note, operatorID, domain.WithdrawalPending).
		WillReturnRows(withdrawalRow(pgxmock.NewRows(columns), settled))
	result, err := repo.Settle(context.Background(), settled.ID, domain.WithdrawalRejected, &note, operatorID)
	assert.NoError(t, err)
	assert.Equal(t, &settled, result)

	mock.ExpectQuery(query).
		WithArgs(settled.ID, domain.WithdrawalRejected, &note, operatorID, domain.WithdrawalPending).
		WillReturnError(pgx.ErrNoRows)
	result, err = repo.Settle(context.Background(), settled.ID, domain.WithdrawalRejected, &note, operatorID)
	assert.NoError(t, err)
	assert.Nil(t, result)

	mock.ExpectQuery(query).
		WithArgs(settled.ID, domain.WithdrawalRejected, &note, operatorID, domain.WithdrawalPending).
		WillReturnError(errors.New("database error"))
	_, err = repo.Settle(context.Background(), settled.ID, domain.WithdrawalRejected, &note, operatorID)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Lists(t *testing.T) {
	repo, mock := NewMock(t)
	first, second := testWithdrawal(), testWithdrawal()
	second.UserID = first.UserID

	tests := []struct {
		name      string
		call      func() ([]domain.Withdrawal, error)
		mockSetup func()
		expectErr bool
		result    []domain.Withdrawal
	}{
		{
			name: "History by user",
			call: func() ([]domain.Withdrawal, error) { return repo.FindByUserID(context.Background(), first.UserID) },
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawals WHERE user_id = $1 ORDER BY created_at DESC`)).
					WithArgs(first.UserID).
					WillReturnRows(withdrawalRow(withdrawalRow(pgxmock.NewRows(columns), first), second))
			},
			result: []domain.Withdrawal{first, second},
		},
		{
			name: "Pending queue",
			call: func() ([]domain.Withdrawal, error) { return repo.FindPending(context.Background()) },
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawals WHERE status = $1 ORDER BY created_at ASC`)).
					WithArgs(domain.WithdrawalPending).
					WillReturnRows(withdrawalRow(pgxmock.NewRows(columns), first))
			},
			result: []domain.Withdrawal{first},
		},
		{
			name: "Database error",
			call: func() ([]domain.Withdrawal, error) { return repo.FindPending(context.Background()) },
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawals WHERE status = $1`)).
					WithArgs(domain.WithdrawalPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := tt.call()
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
