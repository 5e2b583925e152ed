package walletservice

import (
	"context"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WalletRepo interface {
	GetSummary(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
}

type Service struct {
	walletRepo WalletRepo
}

func New(walletRepo WalletRepo) *Service {
	return &Service{
		walletRepo: walletRepo,
	}
}

// GetWallet is read-only. Only Balance is authoritative; the other figures are
// aggregated on every call and never written back.
func (s *Service) GetWallet(ctx context.Context, caller domain.Caller) (*domain.Wallet, error) {
	if caller.Role != domain.RoleSeller {
		return nil, domain.ErrRole
	}
	wallet, err := s.walletRepo.GetSummary(ctx, caller.UserID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.String("userID", caller.UserID.String()), zap.Error(err))
		return nil, domain.StorageError(err)
	}
	if wallet == nil {
		return nil, domain.ErrUserNotFound
	}
	return wallet, nil
}
