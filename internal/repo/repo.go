package repo

import (
	"github.com/GlebRadaev/gigledger/internal/pg"
	deliveryrepo "github.com/GlebRadaev/gigledger/internal/repo/delivery-repo"
	eventrepo "github.com/GlebRadaev/gigledger/internal/repo/event-repo"
	orderrepo "github.com/GlebRadaev/gigledger/internal/repo/order-repo"
	paymentrepo "github.com/GlebRadaev/gigledger/internal/repo/payment-repo"
	settingsrepo "github.com/GlebRadaev/gigledger/internal/repo/settings-repo"
	transactionrepo "github.com/GlebRadaev/gigledger/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/gigledger/internal/repo/user-repo"
	walletrepo "github.com/GlebRadaev/gigledger/internal/repo/wallet-repo"
	withdrawalrepo "github.com/GlebRadaev/gigledger/internal/repo/withdrawal-repo"
)

// Repositories holds the concrete stores; each service narrows them to the interfaces it declares.
type Repositories struct {
	PaymentRepo     *paymentrepo.Repository
	OrderRepo       *orderrepo.Repository
	DeliveryRepo    *deliveryrepo.Repository
	UserRepo        *userrepo.Repository
	TransactionRepo *transactionrepo.Repository
	WithdrawalRepo  *withdrawalrepo.Repository
	SettingsRepo    *settingsrepo.Repository
	WalletRepo      *walletrepo.Repository
	EventRepo       *eventrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		PaymentRepo:     paymentrepo.New(conn),
		OrderRepo:       orderrepo.New(conn),
		DeliveryRepo:    deliveryrepo.New(conn),
		UserRepo:        userrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		WithdrawalRepo:  withdrawalrepo.New(conn),
		SettingsRepo:    settingsrepo.New(conn),
		WalletRepo:      walletrepo.New(conn),
		EventRepo:       eventrepo.New(conn),
	}
}
