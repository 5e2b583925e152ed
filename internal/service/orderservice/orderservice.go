package orderservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/metrics"
	"github.com/GlebRadaev/gigledger/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentRepo interface {
	Exists(ctx context.Context, externalTxID, method string) (bool, error)
	Create(ctx context.Context, payment *domain.Payment) (bool, error)
}

type OrderRepo interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	FindByParticipant(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, t *domain.Transaction) error
}

type EventRepo interface {
	Add(ctx context.Context, event *domain.LedgerEvent) error
}

type Catalog interface {
	GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
}

type CreateOrderInput struct {
	ListingID     uuid.UUID
	PaymentMethod string
	ExternalTxID  string
	Amount        int64
	PayoutNumber  string
}

type CreateOrderResult struct {
	Order       *domain.Order
	Payment     *domain.Payment
	Transaction *domain.Transaction
}

type Service struct {
	paymentRepo     PaymentRepo
	orderRepo       OrderRepo
	transactionRepo TransactionRepo
	eventRepo       EventRepo
	catalog         Catalog
	txManager       pg.TXManager
	metrics         *metrics.LedgerMetrics
}

func New(
	paymentRepo PaymentRepo,
	orderRepo OrderRepo,
	transactionRepo TransactionRepo,
	eventRepo EventRepo,
	catalog Catalog,
	txManager pg.TXManager,
	m *metrics.LedgerMetrics,
) *Service {
	return &Service{
		paymentRepo:     paymentRepo,
		orderRepo:       orderRepo,
		transactionRepo: transactionRepo,
		eventRepo:       eventRepo,
		catalog:         catalog,
		txManager:       txManager,
		metrics:         m,
	}
}

// CreateOrder records a buyer payment and opens the escrow for it. No balance changes:
// the seller is credited only when a delivery is accepted.
func (s *Service) CreateOrder(ctx context.Context, caller domain.Caller, in CreateOrderInput) (*CreateOrderResult, error) {
	result, err := s.createOrder(ctx, caller, in)
	if err != nil {
		s.metrics.RecordError("createOrder", err)
		return nil, err
	}
	s.metrics.RecordOrderCreated(result.Order.Amount)
	return result, nil
}

func (s *Service) createOrder(ctx context.Context, caller domain.Caller, in CreateOrderInput) (*CreateOrderResult, error) {
	if caller.Role != domain.RoleBuyer {
		return nil, domain.ErrRole
	}
	if in.ListingID == uuid.Nil || in.PaymentMethod == "" || in.ExternalTxID == "" || in.Amount <= 0 || in.PayoutNumber == "" {
		return nil, domain.ErrMissingField
	}

	exists, err := s.paymentRepo.Exists(ctx, in.ExternalTxID, in.PaymentMethod)
	if err != nil {
		zap.L().Error("failed to check payment", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	if exists {
		return nil, domain.ErrDuplicatePayment
	}

	listing, err := s.catalog.GetListing(ctx, in.ListingID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			zap.L().Error("failed to resolve listing", zap.String("listingID", in.ListingID.String()), zap.Error(err))
		}
		return nil, domain.StorageError(err)
	}
	if in.Amount != listing.Price {
		return nil, domain.ErrAmountMismatch
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		ID:           uuid.New(),
		BuyerID:      caller.UserID,
		ExternalTxID: in.ExternalTxID,
		Method:       in.PaymentMethod,
		Amount:       in.Amount,
		PayoutNumber: in.PayoutNumber,
		CreatedAt:    now,
	}
	order := &domain.Order{
		ID:        uuid.New(),
		BuyerID:   caller.UserID,
		SellerID:  listing.SellerID,
		ListingID: listing.ID,
		Amount:    in.Amount,
		Status:    domain.OrderStatusPaid,
		PaymentID: payment.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	txn := &domain.Transaction{
		ID:        uuid.New(),
		UserID:    listing.SellerID,
		Type:      domain.TransactionCredit,
		Amount:    in.Amount,
		Method:    domain.MethodOrderPayment,
		Status:    domain.TransactionPending,
		OrderID:   &order.ID,
		PaymentID: &payment.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err := s.paymentRepo.Create(ctx, payment)
		if err != nil {
			return err
		}
		if !created {
			return domain.ErrDuplicatePayment
		}
		if err := s.orderRepo.Create(ctx, order); err != nil {
			return err
		}
		if err := s.transactionRepo.Create(ctx, txn); err != nil {
			return err
		}

		event, err := domain.NewLedgerEvent(domain.AggregateOrder, order.ID, domain.EventOrderCreated, domain.OrderCreatedPayload{
			OrderID:   order.ID,
			BuyerID:   order.BuyerID,
			SellerID:  order.SellerID,
			ListingID: order.ListingID,
			Amount:    order.Amount,
		})
		if err != nil {
			return err
		}
		return s.eventRepo.Add(ctx, event)
	})
	if err != nil {
		if !domain.IsKnown(err) {
			zap.L().Error("failed to create order", zap.Error(err))
		}
		return nil, domain.StorageError(err)
	}

	zap.L().Info("Order created",
		zap.String("orderID", order.ID.String()),
		zap.String("sellerID", order.SellerID.String()),
		zap.Int64("amount", order.Amount),
	)
	return &CreateOrderResult{Order: order, Payment: payment, Transaction: txn}, nil
}

func (s *Service) GetOrder(ctx context.Context, caller domain.Caller, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to get order", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if caller.Role != domain.RoleOperator && order.BuyerID != caller.UserID && order.SellerID != caller.UserID {
		return nil, domain.ErrNotOwner
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, caller domain.Caller) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindByParticipant(ctx, caller.UserID)
	if err != nil {
		zap.L().Error("failed to list orders", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return orders, nil
}
