package dto

import "github.com/GlebRadaev/gigledger/internal/domain"

type WalletResponseDTO struct {
	Balance            int64 `json:"balance" example:"13900"`
	Earnings           int64 `json:"earnings" example:"15000"`
	PendingBalance     int64 `json:"pending_balance" example:"2000"`
	TotalEarned        int64 `json:"total_earned" example:"15000"`
	PendingWithdrawals int64 `json:"pending_withdrawals" example:"1000"`
	TotalWithdrawn     int64 `json:"total_withdrawn" example:"0"`
	CompletedOrders    int   `json:"completed_orders" example:"1"`
	PendingOrders      int   `json:"pending_orders" example:"0"`
}

func NewWalletResponse(w *domain.Wallet) WalletResponseDTO {
	return WalletResponseDTO{
		Balance:            w.Balance,
		Earnings:           w.Earnings,
		PendingBalance:     w.PendingBalance,
		TotalEarned:        w.TotalEarned,
		PendingWithdrawals: w.PendingWithdrawals,
		TotalWithdrawn:     w.TotalWithdrawn,
		CompletedOrders:    w.CompletedOrders,
		PendingOrders:      w.PendingOrders,
	}
}
