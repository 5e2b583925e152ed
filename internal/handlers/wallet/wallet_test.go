package wallet

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/dto"
	"github.com/GlebRadaev/gigledger/pkg/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestGetWalletHandler(t *testing.T) {
	seller := domain.Caller{UserID: uuid.New(), Role: domain.RoleSeller}

	tests := []struct {
		name         string
		withCaller   bool
		prepareMock  func(s *MockService)
		expectedCode int
		expectedBody dto.WalletResponseDTO
	}{
		{
			name:       "Successful retrieval",
			withCaller: true,
			prepareMock: func(s *MockService) {
				s.EXPECT().GetWallet(gomock.Any(), seller).Return(&domain.Wallet{
					UserID:             seller.UserID,
					Balance:            13900,
					Earnings:           15000,
					CompletedOrders:    1,
					TotalEarned:        15000,
					PendingWithdrawals: 1000,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.WalletResponseDTO{
				Balance:            13900,
				Earnings:           15000,
				CompletedOrders:    1,
				TotalEarned:        15000,
				PendingWithdrawals: 1000,
			},
		},
		{
			name:         "No caller",
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:       "Not a seller",
			withCaller: true,
			prepareMock: func(s *MockService) {
				s.EXPECT().GetWallet(gomock.Any(), seller).Return(nil, domain.ErrRole)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:       "Internal server error",
			withCaller: true,
			prepareMock: func(s *MockService) {
				s.EXPECT().GetWallet(gomock.Any(), seller).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewMockService(ctrl)
			tt.prepareMock(service)
			handler := New(service)

			r := httptest.NewRequest(http.MethodGet, "/api/wallet", nil)
			if tt.withCaller {
				r = r.WithContext(auth.WithCaller(r.Context(), seller))
			}
			w := httptest.NewRecorder()

			handler.GetWallet(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.WalletResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
