package dto

import (
	"time"

	"github.com/GlebRadaev/gigledger/internal/domain"
)

type CreateOrderRequestDTO struct {
	ListingID     string `json:"listing_id" example:"3f2c8a9e-6a6b-4c59-9d0e-7b1f0e5a2c11"`
	PaymentMethod string `json:"payment_method" example:"bkash"`
	ExternalTxID  string `json:"external_tx_id" example:"TX1"`
	Amount        int64  `json:"amount" example:"15000"`
	PayoutNumber  string `json:"payout_number" example:"01711000000"`
}

type OrderResponseDTO struct {
	ID        string `json:"id" example:"9b1d3c8e-2f4a-4d8b-8a61-0c2e5f7a9b13"`
	BuyerID   string `json:"buyer_id"`
	SellerID  string `json:"seller_id"`
	ListingID string `json:"listing_id"`
	Amount    int64  `json:"amount" example:"15000"`
	Status    string `json:"status" example:"paid"`
	PaymentID string `json:"payment_id"`
	CreatedAt string `json:"created_at" example:"2024-12-09T16:09:57Z"`
	UpdatedAt string `json:"updated_at" example:"2024-12-09T16:09:57Z"`
}

type CreateOrderResponseDTO struct {
	Order         OrderResponseDTO `json:"order"`
	PaymentID     string           `json:"payment_id"`
	TransactionID string           `json:"transaction_id"`
}

func NewOrderResponse(o *domain.Order) OrderResponseDTO {
	return OrderResponseDTO{
		ID:        o.ID.String(),
		BuyerID:   o.BuyerID.String(),
		SellerID:  o.SellerID.String(),
		ListingID: o.ListingID.String(),
		Amount:    o.Amount,
		Status:    string(o.Status),
		PaymentID: o.PaymentID.String(),
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
		UpdatedAt: o.UpdatedAt.Format(time.RFC3339),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
