package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	AggregateOrder      = "order"
	AggregateDelivery   = "delivery"
	AggregateWithdrawal = "withdrawal"
)

func NewLedgerEvent(aggregate string, aggregateID uuid.UUID, eventType string, payload any) (*LedgerEvent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return &LedgerEvent{
		ID:          uuid.New(),
		Aggregate:   aggregate,
		AggregateID: aggregateID,
		EventType:   eventType,
		Payload:     body,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

type OrderCreatedPayload struct {
	OrderID   uuid.UUID `json:"order_id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	SellerID  uuid.UUID `json:"seller_id"`
	ListingID uuid.UUID `json:"listing_id"`
	Amount    int64     `json:"amount"`
}

type DeliveryDecidedPayload struct {
	DeliveryID       uuid.UUID   `json:"delivery_id"`
	OrderID          uuid.UUID   `json:"order_id"`
	SellerID         uuid.UUID   `json:"seller_id"`
	Decision         Decision    `json:"decision"`
	Released         int64       `json:"released,omitempty"`
	RejectedSiblings []uuid.UUID `json:"rejected_siblings,omitempty"`
}

type WithdrawalPayload struct {
	WithdrawalID  uuid.UUID        `json:"withdrawal_id"`
	TransactionID uuid.UUID        `json:"transaction_id"`
	UserID        uuid.UUID        `json:"user_id"`
	Amount        int64            `json:"amount"`
	Fee           int64            `json:"fee"`
	Status        WithdrawalStatus `json:"status"`
	Refunded      int64            `json:"refunded,omitempty"`
}
