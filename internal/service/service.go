package service

import (
	"github.com/GlebRadaev/gigledger/internal/handlers/deliveries"
	"github.com/GlebRadaev/gigledger/internal/handlers/orders"
	"github.com/GlebRadaev/gigledger/internal/handlers/wallet"
	"github.com/GlebRadaev/gigledger/internal/handlers/withdrawals"
	"github.com/GlebRadaev/gigledger/internal/metrics"
	"github.com/GlebRadaev/gigledger/internal/pg"
	"github.com/GlebRadaev/gigledger/internal/repo"
	"github.com/GlebRadaev/gigledger/internal/service/deliveryservice"
	"github.com/GlebRadaev/gigledger/internal/service/orderservice"
	"github.com/GlebRadaev/gigledger/internal/service/walletservice"
	"github.com/GlebRadaev/gigledger/internal/service/withdrawalservice"
)

type Services struct {
	OrderService      orders.Service
	DeliveryService   deliveries.Service
	WithdrawalService withdrawals.Service
	WalletService     wallet.Service
}

func New(repo *repo.Repositories, catalog orderservice.Catalog, txManager pg.TXManager, m *metrics.LedgerMetrics) *Services {
	orderService := orderservice.New(repo.PaymentRepo, repo.OrderRepo, repo.TransactionRepo, repo.EventRepo, catalog, txManager, m)
	deliveryService := deliveryservice.New(repo.OrderRepo, repo.DeliveryRepo, repo.TransactionRepo, repo.UserRepo, repo.EventRepo, txManager, m)
	withdrawalService := withdrawalservice.New(repo.SettingsRepo, repo.UserRepo, repo.TransactionRepo, repo.WithdrawalRepo, repo.EventRepo, txManager, m)
	walletService := walletservice.New(repo.WalletRepo)

	return &Services{
		OrderService:      orderService,
		DeliveryService:   deliveryService,
		WithdrawalService: withdrawalService,
		WalletService:     walletService,
	}
}
