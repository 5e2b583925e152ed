package dto

import (
	"time"

	"github.com/GlebRadaev/gigledger/internal/domain"
)

type WithdrawRequestDTO struct {
	Amount            int64  `json:"amount" example:"1000"`
	Method            string `json:"method" example:"card"`
	DestinationNumber string `json:"destination_number" example:"4539148803436467"`
}

type SettleWithdrawalRequestDTO struct {
	Decision string  `json:"decision" example:"rejected" enums:"completed,rejected"`
	Note     *string `json:"note,omitempty" example:"card closed"`
}

type WithdrawalResponseDTO struct {
	ID                string  `json:"id"`
	TransactionID     string  `json:"transaction_id"`
	Amount            int64   `json:"amount" example:"1000"`
	Fee               int64   `json:"fee" example:"100"`
	Total             int64   `json:"total" example:"1100"`
	Method            string  `json:"method" example:"card"`
	DestinationNumber string  `json:"destination_number"`
	Status            string  `json:"status" example:"pending"`
	Note              *string `json:"note,omitempty"`
	SettledBy         *string `json:"settled_by,omitempty"`
	CreatedAt         string  `json:"created_at" example:"2024-12-09T16:09:57Z"`
	SettledAt         *string `json:"settled_at,omitempty"`
}

func NewWithdrawalResponse(w *domain.Withdrawal) WithdrawalResponseDTO {
	resp := WithdrawalResponseDTO{
		ID:                w.ID.String(),
		TransactionID:     w.TransactionID.String(),
		Amount:            w.Amount,
		Fee:               w.Fee,
		Total:             w.Total(),
		Method:            w.Method,
		DestinationNumber: w.DestinationNumber,
		Status:            string(w.Status),
		Note:              w.Note,
		CreatedAt:         w.CreatedAt.Format(time.RFC3339),
		SettledAt:         formatTime(w.SettledAt),
	}
	if w.SettledBy != nil {
		operator := w.SettledBy.String()
		resp.SettledBy = &operator
	}
	return resp
}

func NewWithdrawalsResponse(withdrawals []domain.Withdrawal) []WithdrawalResponseDTO {
	response := make([]WithdrawalResponseDTO, len(withdrawals))
	for i := range withdrawals {
		response[i] = NewWithdrawalResponse(&withdrawals[i])
	}
	return response
}
