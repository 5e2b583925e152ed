package deliveries

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/dto"
	"github.com/GlebRadaev/gigledger/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*DeliveryHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(method, target, body string, caller *domain.Caller, key, value string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	ctx := req.Context()
	if caller != nil {
		ctx = auth.WithCaller(ctx, *caller)
	}
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))
}

func TestSubmitDeliveryHandler(t *testing.T) {
	seller := domain.Caller{UserID: uuid.New(), Role: domain.RoleSeller}
	orderID := uuid.New()
	delivery := &domain.Delivery{ID: uuid.New(), OrderID: orderID, ArtifactLocation: "s3://A", Status: domain.DeliveryStatusPending}

	tests := []struct {
		name         string
		caller       *domain.Caller
		orderID      string
		body         string
		prepareMock  func(s *MockService)
		expectedCode int
	}{
		{
			name:    "Delivery submitted",
			caller:  &seller,
			orderID: orderID.String(),
			body:    `{"artifact_location":"s3://A"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().SubmitDelivery(gomock.Any(), seller, orderID, "s3://A").Return(delivery, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "No caller",
			orderID:      orderID.String(),
			body:         `{"artifact_location":"s3://A"}`,
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Malformed order id",
			caller:       &seller,
			orderID:      "42",
			body:         `{"artifact_location":"s3://A"}`,
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed JSON",
			caller:       &seller,
			orderID:      orderID.String(),
			body:         `artifact`,
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "Order completed",
			caller:  &seller,
			orderID: orderID.String(),
			body:    `{"artifact_location":"s3://A"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().SubmitDelivery(gomock.Any(), seller, orderID, "s3://A").Return(nil, domain.ErrOrderCompleted)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:    "Missing artifact",
			caller:  &seller,
			orderID: orderID.String(),
			body:    `{}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().SubmitDelivery(gomock.Any(), seller, orderID, "").Return(nil, domain.ErrMissingField)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := newRequest(http.MethodPost, "/api/orders/"+tt.orderID+"/deliveries", tt.body, tt.caller, "orderID", tt.orderID)
			rec := httptest.NewRecorder()

			handler.SubmitDelivery(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestDecisionHandlers(t *testing.T) {
	buyer := domain.Caller{UserID: uuid.New(), Role: domain.RoleBuyer}
	deliveryID := uuid.New()
	accepted := domain.DecisionAccepted
	rejected := domain.DecisionRejected

	tests := []struct {
		name             string
		accept           bool
		deliveryID       string
		prepareMock      func(s *MockService)
		expectedCode     int
		expectedStatus   string
		expectedDecision string
	}{
		{
			name:       "Accept",
			accept:     true,
			deliveryID: deliveryID.String(),
			prepareMock: func(s *MockService) {
				s.EXPECT().AcceptDelivery(gomock.Any(), buyer, deliveryID).
					Return(&domain.Delivery{ID: deliveryID, Status: domain.DeliveryStatusDelivered, Decision: &accepted}, nil)
			},
			expectedCode:     http.StatusOK,
			expectedStatus:   "delivered",
			expectedDecision: "accepted",
		},
		{
			name:       "Reject keeps status pending",
			deliveryID: deliveryID.String(),
			prepareMock: func(s *MockService) {
				s.EXPECT().RejectDelivery(gomock.Any(), buyer, deliveryID).
					Return(&domain.Delivery{ID: deliveryID, Status: domain.DeliveryStatusPending, Decision: &rejected}, nil)
			},
			expectedCode:     http.StatusOK,
			expectedStatus:   "pending",
			expectedDecision: "rejected",
		},
		{
			name:       "Accept twice",
			accept:     true,
			deliveryID: deliveryID.String(),
			prepareMock: func(s *MockService) {
				s.EXPECT().AcceptDelivery(gomock.Any(), buyer, deliveryID).Return(nil, domain.ErrAlreadyDecided)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:       "Not the buyer",
			deliveryID: deliveryID.String(),
			prepareMock: func(s *MockService) {
				s.EXPECT().RejectDelivery(gomock.Any(), buyer, deliveryID).Return(nil, domain.ErrNotOwner)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Malformed id",
			accept:       true,
			deliveryID:   "x",
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := newRequest(http.MethodPost, "/api/deliveries/"+tt.deliveryID, "", &buyer, "deliveryID", tt.deliveryID)
			rec := httptest.NewRecorder()

			if tt.accept {
				handler.AcceptDelivery(rec, req)
			} else {
				handler.RejectDelivery(rec, req)
			}

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.DeliveryResponseDTO
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedStatus, resp.Status)
				require.NotNil(t, resp.Decision)
				assert.Equal(t, tt.expectedDecision, *resp.Decision)
			}
		})
	}
}

func TestGetDeliveriesHandler(t *testing.T) {
	seller := domain.Caller{UserID: uuid.New(), Role: domain.RoleSeller}
	orderID := uuid.New()

	handler, service := NewMock(t)
	service.EXPECT().ListDeliveries(gomock.Any(), seller, orderID).Return([]domain.Delivery{
		{ID: uuid.New(), OrderID: orderID, Status: domain.DeliveryStatusPending},
		{ID: uuid.New(), OrderID: orderID, Status: domain.DeliveryStatusPending},
	}, nil)

	req := newRequest(http.MethodGet, "/api/orders/"+orderID.String()+"/deliveries", "", &seller, "orderID", orderID.String())
	rec := httptest.NewRecorder()
	handler.GetDeliveries(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []dto.DeliveryResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}
