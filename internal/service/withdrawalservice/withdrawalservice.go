package withdrawalservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/metrics"
	"github.com/GlebRadaev/gigledger/internal/pg"
	"github.com/GlebRadaev/gigledger/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Reserve(ctx context.Context, userID uuid.UUID, total int64) (bool, error)
	Refund(ctx context.Context, userID uuid.UUID, amount int64) (bool, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, t *domain.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	SetStatus(ctx context.Context, id uuid.UUID, from, to domain.TransactionStatus) (bool, error)
}

type WithdrawalRepo interface {
	Create(ctx context.Context, w *domain.Withdrawal) error
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error)
	Settle(ctx context.Context, id uuid.UUID, status domain.WithdrawalStatus, note *string, settledBy uuid.UUID) (*domain.Withdrawal, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Withdrawal, error)
	FindPending(ctx context.Context) ([]domain.Withdrawal, error)
}

type EventRepo interface {
	Add(ctx context.Context, event *domain.LedgerEvent) error
}

type RequestInput struct {
	Amount            int64
	Method            string
	DestinationNumber string
}

type Service struct {
	settingsRepo    SettingsRepo
	userRepo        UserRepo
	transactionRepo TransactionRepo
	withdrawalRepo  WithdrawalRepo
	eventRepo       EventRepo
	txManager       pg.TXManager
	metrics         *metrics.LedgerMetrics
}

func New(
	settingsRepo SettingsRepo,
	userRepo UserRepo,
	transactionRepo TransactionRepo,
	withdrawalRepo WithdrawalRepo,
	eventRepo EventRepo,
	txManager pg.TXManager,
	m *metrics.LedgerMetrics,
) *Service {
	return &Service{
		settingsRepo:    settingsRepo,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		withdrawalRepo:  withdrawalRepo,
		eventRepo:       eventRepo,
		txManager:       txManager,
		metrics:         m,
	}
}

// RequestWithdrawal reserves amount plus fee from the seller's balance and queues the
// payout for an operator. The reservation is a conditional update so two concurrent
// requests cannot overdraw the balance.
func (s *Service) RequestWithdrawal(ctx context.Context, caller domain.Caller, in RequestInput) (*domain.Withdrawal, error) {
	if caller.Role != domain.RoleSeller {
		return nil, domain.ErrRole
	}
	if in.Amount <= 0 || in.Method == "" || in.DestinationNumber == "" {
		return nil, domain.ErrMissingField
	}
	if in.Method == domain.PayoutMethodCard && !validate.IsLuna(in.DestinationNumber) {
		return nil, domain.ErrInvalidDestination
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		zap.L().Error("failed to read settings", zap.Error(err))
		return nil, s.fail("requestWithdrawal", err)
	}
	if in.Amount < settings.MinWithdrawAmount {
		return nil, s.fail("requestWithdrawal", domain.ErrBelowMinimum)
	}
	fee, total, ok := settings.WithdrawalTotal(in.Amount)
	if !ok {
		return nil, s.fail("requestWithdrawal", domain.ErrInsufficientBalance)
	}

	user, err := s.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, s.fail("requestWithdrawal", err)
	}
	if user == nil {
		return nil, s.fail("requestWithdrawal", domain.ErrUserNotFound)
	}
	if total > user.Balance {
		return nil, s.fail("requestWithdrawal", domain.ErrInsufficientBalance)
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:        uuid.New(),
		UserID:    caller.UserID,
		Type:      domain.TransactionDebit,
		Amount:    total,
		Method:    domain.MethodWithdrawal,
		Status:    domain.TransactionPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	withdrawal := &domain.Withdrawal{
		ID:                uuid.New(),
		UserID:            caller.UserID,
		TransactionID:     txn.ID,
		Amount:            in.Amount,
		Fee:               fee,
		Method:            in.Method,
		DestinationNumber: in.DestinationNumber,
		Status:            domain.WithdrawalPending,
		CreatedAt:         now,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		reserved, err := s.userRepo.Reserve(ctx, caller.UserID, total)
		if err != nil {
			return err
		}
		if !reserved {
			return domain.ErrInsufficientBalance
		}
		if err := s.transactionRepo.Create(ctx, txn); err != nil {
			return err
		}
		if err := s.withdrawalRepo.Create(ctx, withdrawal); err != nil {
			return err
		}
		return s.addEvent(ctx, domain.EventWithdrawalRequested, withdrawal, 0)
	})
	if err != nil {
		if !domain.IsKnown(err) {
			zap.L().Error("failed to request withdrawal", zap.Error(err))
		}
		return nil, s.fail("requestWithdrawal", err)
	}

	s.metrics.RecordWithdrawalRequested(withdrawal.Amount, withdrawal.Fee)
	zap.L().Info("Withdrawal requested",
		zap.String("withdrawalID", withdrawal.ID.String()),
		zap.Int64("amount", withdrawal.Amount),
		zap.Int64("fee", withdrawal.Fee),
	)
	return withdrawal, nil
}

// SettleWithdrawal closes a pending withdrawal. A rejection returns amount plus fee to the seller.
func (s *Service) SettleWithdrawal(ctx context.Context, caller domain.Caller, withdrawalID uuid.UUID, decision domain.WithdrawalStatus, note *string) (*domain.Withdrawal, error) {
	if caller.Role != domain.RoleOperator {
		return nil, domain.ErrRole
	}

	var txnStatus domain.TransactionStatus
	switch decision {
	case domain.WithdrawalCompleted:
		txnStatus = domain.TransactionCompleted
	case domain.WithdrawalRejected:
		txnStatus = domain.TransactionFailed
	default:
		return nil, domain.ErrInvalidDecision
	}

	var settled *domain.Withdrawal
	var refunded int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		withdrawal, err := s.withdrawalRepo.LockByID(ctx, withdrawalID)
		if err != nil {
			return err
		}
		if withdrawal == nil {
			return domain.ErrWithdrawalNotFound
		}
		if withdrawal.Status != domain.WithdrawalPending {
			return domain.ErrAlreadySettled
		}

		txn, err := s.transactionRepo.FindByID(ctx, withdrawal.TransactionID)
		if err != nil {
			return err
		}
		if txn == nil {
			return domain.ErrTransactionNotFound
		}
		if txn.Status != domain.TransactionPending {
			return domain.ErrTxnNotPending
		}
		user, err := s.userRepo.FindByID(ctx, withdrawal.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}

		updated, err := s.transactionRepo.SetStatus(ctx, txn.ID, domain.TransactionPending, txnStatus)
		if err != nil {
			return err
		}
		if !updated {
			return domain.ErrTxnNotPending
		}
		settled, err = s.withdrawalRepo.Settle(ctx, withdrawalID, decision, note, caller.UserID)
		if err != nil {
			return err
		}
		if settled == nil {
			return domain.ErrAlreadySettled
		}

		if decision == domain.WithdrawalRejected {
			refunded = settled.Total()
			ok, err := s.userRepo.Refund(ctx, settled.UserID, refunded)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrUserNotFound
			}
		}
		return s.addEvent(ctx, domain.EventWithdrawalSettled, settled, refunded)
	})
	if err != nil {
		if !domain.IsKnown(err) {
			zap.L().Error("failed to settle withdrawal", zap.String("withdrawalID", withdrawalID.String()), zap.Error(err))
		}
		return nil, s.fail("settleWithdrawal", err)
	}

	s.metrics.RecordWithdrawalSettled(decision, refunded)
	zap.L().Info("Withdrawal settled",
		zap.String("withdrawalID", withdrawalID.String()),
		zap.String("decision", string(decision)),
		zap.String("operatorID", caller.UserID.String()),
	)
	return settled, nil
}

func (s *Service) ListWithdrawals(ctx context.Context, caller domain.Caller) ([]domain.Withdrawal, error) {
	if caller.Role != domain.RoleSeller {
		return nil, domain.ErrRole
	}
	withdrawals, err := s.withdrawalRepo.FindByUserID(ctx, caller.UserID)
	if err != nil {
		zap.L().Error("failed to list withdrawals", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return withdrawals, nil
}

func (s *Service) ListPending(ctx context.Context, caller domain.Caller) ([]domain.Withdrawal, error) {
	if caller.Role != domain.RoleOperator {
		return nil, domain.ErrRole
	}
	withdrawals, err := s.withdrawalRepo.FindPending(ctx)
	if err != nil {
		zap.L().Error("failed to list pending withdrawals", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return withdrawals, nil
}

func (s *Service) addEvent(ctx context.Context, eventType string, w *domain.Withdrawal, refunded int64) error {
	event, err := domain.NewLedgerEvent(domain.AggregateWithdrawal, w.ID, eventType, domain.WithdrawalPayload{
		WithdrawalID:  w.ID,
		TransactionID: w.TransactionID,
		UserID:        w.UserID,
		Amount:        w.Amount,
		Fee:           w.Fee,
		Status:        w.Status,
		Refunded:      refunded,
	})
	if err != nil {
		return err
	}
	return s.eventRepo.Add(ctx, event)
}

func (s *Service) fail(operation string, err error) error {
	err = domain.StorageError(err)
	s.metrics.RecordError(operation, err)
	return err
}
