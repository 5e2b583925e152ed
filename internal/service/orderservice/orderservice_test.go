package orderservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/metrics"
	"github.com/GlebRadaev/gigledger/internal/pg"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	payments     *MockPaymentRepo
	orders       *MockOrderRepo
	transactions *MockTransactionRepo
	events       *MockEventRepo
	catalog      *MockCatalog
	txManager    *pg.MockTXManager
	metrics      *metrics.LedgerMetrics
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		payments:     NewMockPaymentRepo(ctrl),
		orders:       NewMockOrderRepo(ctrl),
		transactions: NewMockTransactionRepo(ctrl),
		events:       NewMockEventRepo(ctrl),
		catalog:      NewMockCatalog(ctrl),
		txManager:    pg.NewMockTXManager(ctrl),
		metrics:      metrics.New(prometheus.NewRegistry()),
	}
	service := New(m.payments, m.orders, m.transactions, m.events, m.catalog, m.txManager, m.metrics)
	return service, m
}

func runInTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) })
}

func TestService_CreateOrder(t *testing.T) {
	buyer := domain.Caller{UserID: uuid.New(), Role: domain.RoleBuyer}
	listing := &domain.Listing{ID: uuid.New(), SellerID: uuid.New(), Price: 15000}
	validInput := CreateOrderInput{
		ListingID:     listing.ID,
		PaymentMethod: "bkash",
		ExternalTxID:  "TX1",
		Amount:        15000,
		PayoutNumber:  "01700000000",
	}

	tests := []struct {
		name          string
		caller        domain.Caller
		input         CreateOrderInput
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:          "Caller is not a buyer",
			caller:        domain.Caller{UserID: uuid.New(), Role: domain.RoleSeller},
			input:         validInput,
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrRole,
		},
		{
			name:   "Missing external transaction id",
			caller: buyer,
			input: CreateOrderInput{
				ListingID: listing.ID, PaymentMethod: "bkash", Amount: 15000, PayoutNumber: "01700000000",
			},
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrMissingField,
		},
		{
			name:   "Non-positive amount",
			caller: buyer,
			input: CreateOrderInput{
				ListingID: listing.ID, PaymentMethod: "bkash", ExternalTxID: "TX1", PayoutNumber: "01700000000",
			},
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrMissingField,
		},
		{
			name:   "Payment already recorded",
			caller: buyer,
			input:  validInput,
			prepareMock: func(m *mocks) {
				m.payments.EXPECT().Exists(gomock.Any(), "TX1", "bkash").Return(true, nil)
			},
			expectedError: domain.ErrDuplicatePayment,
		},
		{
			name:   "Listing not found",
			caller: buyer,
			input:  validInput,
			prepareMock: func(m *mocks) {
				m.payments.EXPECT().Exists(gomock.Any(), "TX1", "bkash").Return(false, nil)
				m.catalog.EXPECT().GetListing(gomock.Any(), listing.ID).Return(nil, domain.ErrListingNotFound)
			},
			expectedError: domain.ErrListingNotFound,
		},
		{
			name:   "Amount differs from listing price",
			caller: buyer,
			input: CreateOrderInput{
				ListingID: listing.ID, PaymentMethod: "bkash", ExternalTxID: "TX1", Amount: 14999, PayoutNumber: "01700000000",
			},
			prepareMock: func(m *mocks) {
				m.payments.EXPECT().Exists(gomock.Any(), "TX1", "bkash").Return(false, nil)
				m.catalog.EXPECT().GetListing(gomock.Any(), listing.ID).Return(listing, nil)
			},
			expectedError: domain.ErrAmountMismatch,
		},
		{
			name:   "Concurrent duplicate loses the unique constraint",
			caller: buyer,
			input:  validInput,
			prepareMock: func(m *mocks) {
				m.payments.EXPECT().Exists(gomock.Any(), "TX1", "bkash").Return(false, nil)
				m.catalog.EXPECT().GetListing(gomock.Any(), listing.ID).Return(listing, nil)
				runInTx(m)
				m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedError: domain.ErrDuplicatePayment,
		},
		{
			name:   "Payment lookup fails",
			caller: buyer,
			input:  validInput,
			prepareMock: func(m *mocks) {
				m.payments.EXPECT().Exists(gomock.Any(), "TX1", "bkash").Return(false, errors.New("database error"))
			},
			expectedError: domain.ErrStorage,
		},
		{
			name:   "Catalog unreachable",
			caller: buyer,
			input:  validInput,
			prepareMock: func(m *mocks) {
				m.payments.EXPECT().Exists(gomock.Any(), "TX1", "bkash").Return(false, nil)
				m.catalog.EXPECT().GetListing(gomock.Any(), listing.ID).Return(nil, errors.New("connection refused"))
			},
			expectedError: domain.ErrStorage,
		},
		{
			name:   "Transaction insert fails",
			caller: buyer,
			input:  validInput,
			prepareMock: func(m *mocks) {
				m.payments.EXPECT().Exists(gomock.Any(), "TX1", "bkash").Return(false, nil)
				m.catalog.EXPECT().GetListing(gomock.Any(), listing.ID).Return(listing, nil)
				runInTx(m)
				m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(true, nil)
				m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			expectedError: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			result, err := service.CreateOrder(context.Background(), tt.caller, tt.input)
			assert.ErrorIs(t, err, tt.expectedError)
			assert.Nil(t, result)
			assert.Equal(t, 0.0, testutil.ToFloat64(m.metrics.OrdersCreatedTotal))
		})
	}
}

func TestService_CreateOrder_Success(t *testing.T) {
	service, m := NewMock(t)
	buyer := domain.Caller{UserID: uuid.New(), Role: domain.RoleBuyer}
	listing := &domain.Listing{ID: uuid.New(), SellerID: uuid.New(), Price: 15000}
	input := CreateOrderInput{
		ListingID:     listing.ID,
		PaymentMethod: "bkash",
		ExternalTxID:  "TX1",
		Amount:        15000,
		PayoutNumber:  "01700000000",
	}

	var saved struct {
		payment *domain.Payment
		order   *domain.Order
		txn     *domain.Transaction
		event   *domain.LedgerEvent
	}
	m.payments.EXPECT().Exists(gomock.Any(), "TX1", "bkash").Return(false, nil)
	m.catalog.EXPECT().GetListing(gomock.Any(), listing.ID).Return(listing, nil)
	runInTx(m)
	m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Payment) (bool, error) {
		saved.payment = p
		return true, nil
	})
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *domain.Order) error {
		saved.order = o
		return nil
	})
	m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, txn *domain.Transaction) error {
		saved.txn = txn
		return nil
	})
	m.events.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.LedgerEvent) error {
		saved.event = e
		return nil
	})

	result, err := service.CreateOrder(context.Background(), buyer, input)
	require.NoError(t, err)

	assert.Equal(t, saved.payment, result.Payment)
	assert.Equal(t, saved.order, result.Order)
	assert.Equal(t, saved.txn, result.Transaction)

	assert.Equal(t, buyer.UserID, result.Payment.BuyerID)
	assert.Equal(t, "TX1", result.Payment.ExternalTxID)

	assert.Equal(t, domain.OrderStatusPaid, result.Order.Status)
	assert.Equal(t, listing.SellerID, result.Order.SellerID)
	assert.Equal(t, buyer.UserID, result.Order.BuyerID)
	assert.Equal(t, result.Payment.ID, result.Order.PaymentID)

	assert.Equal(t, domain.TransactionCredit, result.Transaction.Type)
	assert.Equal(t, domain.TransactionPending, result.Transaction.Status)
	assert.Equal(t, domain.MethodOrderPayment, result.Transaction.Method)
	assert.Equal(t, listing.SellerID, result.Transaction.UserID)
	assert.Equal(t, int64(15000), result.Transaction.Amount)
	assert.Equal(t, result.Order.ID, *result.Transaction.OrderID)

	assert.Equal(t, domain.EventOrderCreated, saved.event.EventType)
	assert.Equal(t, result.Order.ID, saved.event.AggregateID)
	var payload domain.OrderCreatedPayload
	require.NoError(t, json.Unmarshal(saved.event.Payload, &payload))
	assert.Equal(t, int64(15000), payload.Amount)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.metrics.OrdersCreatedTotal))
	assert.Equal(t, 15000.0, testutil.ToFloat64(m.metrics.OrdersCreatedAmountTotal))
}

func TestService_CreateOrder_IdempotentPayment(t *testing.T) {
	service, m := NewMock(t)
	buyer := domain.Caller{UserID: uuid.New(), Role: domain.RoleBuyer}
	listing := &domain.Listing{ID: uuid.New(), SellerID: uuid.New(), Price: 15000}
	input := CreateOrderInput{ListingID: listing.ID, PaymentMethod: "bkash", ExternalTxID: "TX1", Amount: 15000, PayoutNumber: "01700000000"}

	gomock.InOrder(
		m.payments.EXPECT().Exists(gomock.Any(), "TX1", "bkash").Return(false, nil),
		m.payments.EXPECT().Exists(gomock.Any(), "TX1", "bkash").Return(true, nil),
	)
	m.catalog.EXPECT().GetListing(gomock.Any(), listing.ID).Return(listing, nil)
	runInTx(m)
	m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(true, nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.events.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)

	_, err := service.CreateOrder(context.Background(), buyer, input)
	require.NoError(t, err)

	_, err = service.CreateOrder(context.Background(), buyer, input)
	assert.ErrorIs(t, err, domain.ErrDuplicatePayment)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.metrics.OrdersCreatedTotal))
}

func TestService_GetOrder(t *testing.T) {
	order := &domain.Order{ID: uuid.New(), BuyerID: uuid.New(), SellerID: uuid.New(), Status: domain.OrderStatusPaid}

	tests := []struct {
		name          string
		caller        domain.Caller
		prepareMock   func(m *mocks)
		expectedOrder *domain.Order
		expectedError error
	}{
		{
			name:   "Buyer reads own order",
			caller: domain.Caller{UserID: order.BuyerID, Role: domain.RoleBuyer},
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().FindByID(gomock.Any(), order.ID).Return(order, nil)
			},
			expectedOrder: order,
		},
		{
			name:   "Seller reads own order",
			caller: domain.Caller{UserID: order.SellerID, Role: domain.RoleSeller},
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().FindByID(gomock.Any(), order.ID).Return(order, nil)
			},
			expectedOrder: order,
		},
		{
			name:   "Stranger is rejected",
			caller: domain.Caller{UserID: uuid.New(), Role: domain.RoleBuyer},
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().FindByID(gomock.Any(), order.ID).Return(order, nil)
			},
			expectedError: domain.ErrNotOwner,
		},
		{
			name:   "Order not found",
			caller: domain.Caller{UserID: order.BuyerID, Role: domain.RoleBuyer},
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().FindByID(gomock.Any(), order.ID).Return(nil, nil)
			},
			expectedError: domain.ErrOrderNotFound,
		},
		{
			name:   "Storage failure",
			caller: domain.Caller{UserID: order.BuyerID, Role: domain.RoleBuyer},
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().FindByID(gomock.Any(), order.ID).Return(nil, errors.New("database error"))
			},
			expectedError: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			result, err := service.GetOrder(context.Background(), tt.caller, order.ID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedOrder, result)
		})
	}
}

func TestService_ListOrders(t *testing.T) {
	service, m := NewMock(t)
	caller := domain.Caller{UserID: uuid.New(), Role: domain.RoleSeller}
	orders := []domain.Order{{ID: uuid.New(), SellerID: caller.UserID}}

	m.orders.EXPECT().FindByParticipant(gomock.Any(), caller.UserID).Return(orders, nil)
	result, err := service.ListOrders(context.Background(), caller)
	assert.NoError(t, err)
	assert.Equal(t, orders, result)

	m.orders.EXPECT().FindByParticipant(gomock.Any(), caller.UserID).Return(nil, errors.New("database error"))
	_, err = service.ListOrders(context.Background(), caller)
	assert.ErrorIs(t, err, domain.ErrStorage)
}
