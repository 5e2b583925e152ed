package deliveryservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/metrics"
	"github.com/GlebRadaev/gigledger/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error)
}

type DeliveryRepo interface {
	Create(ctx context.Context, delivery *domain.Delivery) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Delivery, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Delivery, error)
	Decide(ctx context.Context, id uuid.UUID, status domain.DeliveryStatus, decision domain.Decision) (*domain.Delivery, error)
	RejectUndecidedSiblings(ctx context.Context, orderID, acceptedID uuid.UUID) ([]uuid.UUID, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]domain.Delivery, error)
}

type TransactionRepo interface {
	CompleteOrderPayment(ctx context.Context, orderID uuid.UUID) (bool, error)
}

type UserRepo interface {
	CreditSettlement(ctx context.Context, sellerID uuid.UUID, amount int64) (bool, error)
}

type EventRepo interface {
	Add(ctx context.Context, event *domain.LedgerEvent) error
}

type Service struct {
	orderRepo       OrderRepo
	deliveryRepo    DeliveryRepo
	transactionRepo TransactionRepo
	userRepo        UserRepo
	eventRepo       EventRepo
	txManager       pg.TXManager
	metrics         *metrics.LedgerMetrics
}

func New(
	orderRepo OrderRepo,
	deliveryRepo DeliveryRepo,
	transactionRepo TransactionRepo,
	userRepo UserRepo,
	eventRepo EventRepo,
	txManager pg.TXManager,
	m *metrics.LedgerMetrics,
) *Service {
	return &Service{
		orderRepo:       orderRepo,
		deliveryRepo:    deliveryRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		eventRepo:       eventRepo,
		txManager:       txManager,
		metrics:         m,
	}
}

func (s *Service) SubmitDelivery(ctx context.Context, caller domain.Caller, orderID uuid.UUID, artifact string) (*domain.Delivery, error) {
	if caller.Role != domain.RoleSeller {
		return nil, domain.ErrRole
	}
	if artifact == "" {
		return nil, domain.ErrMissingField
	}

	delivery := &domain.Delivery{
		ID:               uuid.New(),
		OrderID:          orderID,
		ArtifactLocation: artifact,
		Status:           domain.DeliveryStatusPending,
		CreatedAt:        time.Now().UTC(),
	}

	// The order lock orders this insert against a concurrent accept.
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.LockByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrOrderNotFound
		}
		if order.SellerID != caller.UserID {
			return domain.ErrNotOwner
		}
		if err := checkOpen(order); err != nil {
			return err
		}
		return s.deliveryRepo.Create(ctx, delivery)
	})
	if err != nil {
		s.fail("submitDelivery", err)
		return nil, domain.StorageError(err)
	}
	return delivery, nil
}

// AcceptDelivery releases the order's escrow to the seller. The order row is locked
// before the delivery so concurrent decisions on one order serialize.
func (s *Service) AcceptDelivery(ctx context.Context, caller domain.Caller, deliveryID uuid.UUID) (*domain.Delivery, error) {
	if caller.Role != domain.RoleBuyer {
		return nil, domain.ErrRole
	}

	var accepted *domain.Delivery
	var order *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.lockForDecision(ctx, caller, deliveryID)
		if err != nil {
			return err
		}

		accepted, err = s.deliveryRepo.Decide(ctx, deliveryID, domain.DeliveryStatusDelivered, domain.DecisionAccepted)
		if err != nil {
			return err
		}
		if accepted == nil {
			return domain.ErrAlreadyDecided
		}

		rejected, err := s.deliveryRepo.RejectUndecidedSiblings(ctx, order.ID, deliveryID)
		if err != nil {
			return err
		}

		completed, err := s.orderRepo.MarkCompleted(ctx, order.ID)
		if err != nil {
			return err
		}
		if !completed {
			return domain.ErrOrderCompleted
		}

		closed, err := s.transactionRepo.CompleteOrderPayment(ctx, order.ID)
		if err != nil {
			return err
		}
		if !closed {
			return domain.ErrTransactionNotFound
		}

		credited, err := s.userRepo.CreditSettlement(ctx, order.SellerID, order.Amount)
		if err != nil {
			return err
		}
		if !credited {
			return domain.ErrUserNotFound
		}

		return s.addEvent(ctx, domain.EventDeliveryAccepted, domain.DeliveryDecidedPayload{
			DeliveryID:       deliveryID,
			OrderID:          order.ID,
			SellerID:         order.SellerID,
			Decision:         domain.DecisionAccepted,
			Released:         order.Amount,
			RejectedSiblings: rejected,
		})
	})
	if err != nil {
		s.fail("acceptDelivery", err)
		return nil, domain.StorageError(err)
	}

	s.metrics.RecordDecision(domain.DecisionAccepted, order.Amount)
	zap.L().Info("Delivery accepted, escrow released",
		zap.String("deliveryID", deliveryID.String()),
		zap.String("orderID", order.ID.String()),
		zap.Int64("amount", order.Amount),
	)
	return accepted, nil
}

// RejectDelivery records the decision only. The order stays paid so the seller can resubmit.
func (s *Service) RejectDelivery(ctx context.Context, caller domain.Caller, deliveryID uuid.UUID) (*domain.Delivery, error) {
	if caller.Role != domain.RoleBuyer {
		return nil, domain.ErrRole
	}

	var rejected *domain.Delivery
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.lockForDecision(ctx, caller, deliveryID)
		if err != nil {
			return err
		}

		rejected, err = s.deliveryRepo.Decide(ctx, deliveryID, domain.DeliveryStatusPending, domain.DecisionRejected)
		if err != nil {
			return err
		}
		if rejected == nil {
			return domain.ErrAlreadyDecided
		}

		return s.addEvent(ctx, domain.EventDeliveryRejected, domain.DeliveryDecidedPayload{
			DeliveryID: deliveryID,
			OrderID:    order.ID,
			SellerID:   order.SellerID,
			Decision:   domain.DecisionRejected,
		})
	})
	if err != nil {
		s.fail("rejectDelivery", err)
		return nil, domain.StorageError(err)
	}

	s.metrics.RecordDecision(domain.DecisionRejected, 0)
	return rejected, nil
}

func (s *Service) ListDeliveries(ctx context.Context, caller domain.Caller, orderID uuid.UUID) ([]domain.Delivery, error) {
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

	deliveries, err := s.deliveryRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to list deliveries", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return deliveries, nil
}

// lockForDecision locks the parent order then the delivery and runs the shared guards.
func (s *Service) lockForDecision(ctx context.Context, caller domain.Caller, deliveryID uuid.UUID) (*domain.Order, error) {
	delivery, err := s.deliveryRepo.FindByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, domain.ErrDeliveryNotFound
	}

	order, err := s.orderRepo.LockByID(ctx, delivery.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if order.BuyerID != caller.UserID {
		return nil, domain.ErrNotOwner
	}

	delivery, err = s.deliveryRepo.LockByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, domain.ErrDeliveryNotFound
	}
	if delivery.Decided() {
		return nil, domain.ErrAlreadyDecided
	}
	if err := checkOpen(order); err != nil {
		return nil, err
	}
	return order, nil
}

func checkOpen(order *domain.Order) error {
	switch order.Status {
	case domain.OrderStatusPaid:
		return nil
	case domain.OrderStatusCompleted:
		return domain.ErrOrderCompleted
	default:
		return domain.ErrOrderNotOpen
	}
}

func (s *Service) addEvent(ctx context.Context, eventType string, payload domain.DeliveryDecidedPayload) error {
	event, err := domain.NewLedgerEvent(domain.AggregateDelivery, payload.DeliveryID, eventType, payload)
	if err != nil {
		return err
	}
	return s.eventRepo.Add(ctx, event)
}

func (s *Service) fail(operation string, err error) {
	if !domain.IsKnown(err) {
		zap.L().Error("delivery operation failed", zap.String("operation", operation), zap.Error(err))
	}
	s.metrics.RecordError(operation, domain.StorageError(err))
}
