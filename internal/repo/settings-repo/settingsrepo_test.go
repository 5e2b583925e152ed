package settingsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT key, value FROM settings WHERE key = ANY($1)`)
	keys := []string{domain.SettingWithdrawFeePercentage, domain.SettingMinWithdrawAmount, domain.SettingMinFee}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Settings
	}{
		{
			name: "All keys present",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"key", "value"}).
					AddRow(domain.SettingWithdrawFeePercentage, "1.85").
					AddRow(domain.SettingMinWithdrawAmount, "500").
					AddRow(domain.SettingMinFee, "10")
				mock.ExpectQuery(query).WithArgs(keys).WillReturnRows(rows)
			},
			result: &domain.Settings{
				WithdrawFeePercentage: decimal.RequireFromString("1.85"),
				MinWithdrawAmount:     500,
				MinFee:                10,
			},
		},
		{
			name: "Missing keys default to zero",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"key", "value"}).
					AddRow(domain.SettingWithdrawFeePercentage, "10")
				mock.ExpectQuery(query).WithArgs(keys).WillReturnRows(rows)
			},
			result: &domain.Settings{WithdrawFeePercentage: decimal.RequireFromString("10")},
		},
		{
			name: "Malformed value",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"key", "value"}).
					AddRow(domain.SettingMinWithdrawAmount, "lots")
				mock.ExpectQuery(query).WithArgs(keys).WillReturnRows(rows)
			},
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(keys).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Get(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.result.WithdrawFeePercentage.Equal(result.WithdrawFeePercentage))
			assert.Equal(t, tt.result.MinWithdrawAmount, result.MinWithdrawAmount)
			assert.Equal(t, tt.result.MinFee, result.MinFee)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
