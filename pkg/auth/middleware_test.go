package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/gigledger/internal/domain"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	userID := uuid.New()
	valid, _ := jwtService.GenerateJWT(userID, domain.RoleSeller, time.Now().Add(time.Hour))

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{name: "No header", header: "", expectedCode: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic abc", expectedCode: http.StatusUnauthorized},
		{name: "Bad token", header: "Bearer nope", expectedCode: http.StatusUnauthorized},
		{name: "Valid token", header: "Bearer " + valid, expectedCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				caller, ok := CallerFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, domain.Caller{UserID: userID, Role: domain.RoleSeller}, caller)
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/api/wallet", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			AuthMiddleware(jwtService)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		caller       *domain.Caller
		expectedCode int
	}{
		{name: "No caller", caller: nil, expectedCode: http.StatusUnauthorized},
		{name: "Wrong role", caller: &domain.Caller{UserID: uuid.New(), Role: domain.RoleBuyer}, expectedCode: http.StatusForbidden},
		{name: "Allowed role", caller: &domain.Caller{UserID: uuid.New(), Role: domain.RoleOperator}, expectedCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/admin/withdrawals/1/settle", nil)
			if tt.caller != nil {
				r = r.WithContext(WithCaller(r.Context(), *tt.caller))
			}
			w := httptest.NewRecorder()

			RequireRole(domain.RoleOperator)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
