package walletservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestService_GetWallet(t *testing.T) {
	seller := domain.Caller{UserID: uuid.New(), Role: domain.RoleSeller}
	wallet := &domain.Wallet{
		UserID:             seller.UserID,
		Balance:            13900,
		Earnings:           15000,
		CompletedOrders:    1,
		PendingBalance:     2000,
		TotalEarned:        15000,
		PendingWithdrawals: 1000,
	}

	tests := []struct {
		name          string
		caller        domain.Caller
		mockSetup     func(m *MockWalletRepo)
		expected      *domain.Wallet
		expectedError error
	}{
		{
			name:   "Seller wallet",
			caller: seller,
			mockSetup: func(m *MockWalletRepo) {
				m.EXPECT().GetSummary(gomock.Any(), seller.UserID).Return(wallet, nil)
			},
			expected: wallet,
		},
		{
			name:          "Buyer has no wallet",
			caller:        domain.Caller{UserID: uuid.New(), Role: domain.RoleBuyer},
			mockSetup:     func(m *MockWalletRepo) {},
			expectedError: domain.ErrRole,
		},
		{
			name:   "Unknown seller",
			caller: seller,
			mockSetup: func(m *MockWalletRepo) {
				m.EXPECT().GetSummary(gomock.Any(), seller.UserID).Return(nil, nil)
			},
			expectedError: domain.ErrUserNotFound,
		},
		{
			name:   "Storage failure",
			caller: seller,
			mockSetup: func(m *MockWalletRepo) {
				m.EXPECT().GetSummary(gomock.Any(), seller.UserID).Return(nil, errors.New("database error"))
			},
			expectedError: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockWalletRepo(ctrl)
			tt.mockSetup(repo)

			result, err := New(repo).GetWallet(context.Background(), tt.caller)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}
