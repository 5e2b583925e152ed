package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleBuyer    Role = "buyer"
	RoleSeller   Role = "seller"
	RoleOperator Role = "operator"
)

// Caller is the authenticated identity supplied by the token middleware.
type Caller struct {
	UserID uuid.UUID
	Role   Role
}

type OrderStatus string

const (
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusRejected  DeliveryStatus = "rejected"
)

type Decision string

const (
	DecisionAccepted Decision = "accepted"
	DecisionRejected Decision = "rejected"
)

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

type TransactionMethod string

const (
	MethodOrderPayment TransactionMethod = "order_payment"
	MethodWithdrawal   TransactionMethod = "withdrawal"
	MethodRefund       TransactionMethod = "refund"
	MethodBonus        TransactionMethod = "bonus"
	MethodFee          TransactionMethod = "fee"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalCompleted WithdrawalStatus = "completed"
	WithdrawalRejected  WithdrawalStatus = "rejected"
)

// User holds the balance counters of an account. Amounts are whole currency units.
type User struct {
	ID              uuid.UUID `db:"id"`
	Role            Role      `db:"role"`
	Balance         int64     `db:"balance"`
	Earnings        int64     `db:"earnings"`
	PendingOrders   int       `db:"pending_orders"`
	CompletedOrders int       `db:"completed_orders"`
}

type Listing struct {
	ID       uuid.UUID `json:"id"`
	SellerID uuid.UUID `json:"seller_id"`
	Price    int64     `json:"price"`
}

type Payment struct {
	ID           uuid.UUID `db:"id"`
	BuyerID      uuid.UUID `db:"buyer_id"`
	ExternalTxID string    `db:"external_tx_id"`
	Method       string    `db:"method"`
	Amount       int64     `db:"amount"`
	PayoutNumber string    `db:"payout_number"`
	CreatedAt    time.Time `db:"created_at"`
}

type Order struct {
	ID        uuid.UUID   `db:"id"`
	BuyerID   uuid.UUID   `db:"buyer_id"`
	SellerID  uuid.UUID   `db:"seller_id"`
	ListingID uuid.UUID   `db:"listing_id"`
	Amount    int64       `db:"amount"`
	Status    OrderStatus `db:"status"`
	PaymentID uuid.UUID   `db:"payment_id"`
	CreatedAt time.Time   `db:"created_at"`
	UpdatedAt time.Time   `db:"updated_at"`
}

// Delivery is one work submission. Decision is nil until the buyer decides.
type Delivery struct {
	ID               uuid.UUID      `db:"id"`
	OrderID          uuid.UUID      `db:"order_id"`
	ArtifactLocation string         `db:"artifact_location"`
	Status           DeliveryStatus `db:"status"`
	Decision         *Decision      `db:"decision"`
	CreatedAt        time.Time      `db:"created_at"`
	DecidedAt        *time.Time     `db:"decided_at"`
}

func (d *Delivery) Decided() bool {
	return d.Decision != nil
}

type Transaction struct {
	ID        uuid.UUID         `db:"id"`
	UserID    uuid.UUID         `db:"user_id"`
	Type      TransactionType   `db:"type"`
	Amount    int64             `db:"amount"`
	Method    TransactionMethod `db:"method"`
	Status    TransactionStatus `db:"status"`
	OrderID   *uuid.UUID        `db:"order_id"`
	PaymentID *uuid.UUID        `db:"payment_id"`
	CreatedAt time.Time         `db:"created_at"`
	UpdatedAt time.Time         `db:"updated_at"`
}

type Withdrawal struct {
	ID                uuid.UUID        `db:"id"`
	UserID            uuid.UUID        `db:"user_id"`
	TransactionID     uuid.UUID        `db:"transaction_id"`
	Amount            int64            `db:"amount"`
	Fee               int64            `db:"fee"`
	Method            string           `db:"method"`
	DestinationNumber string           `db:"destination_number"`
	Status            WithdrawalStatus `db:"status"`
	Note              *string          `db:"note"`
	SettledBy         *uuid.UUID       `db:"settled_by"`
	CreatedAt         time.Time        `db:"created_at"`
	SettledAt         *time.Time       `db:"settled_at"`
}

// PayoutMethodCard destinations are card numbers and must pass the Luhn check.
const PayoutMethodCard = "card"

// Total is the amount reserved from the balance at request time.
func (w *Withdrawal) Total() int64 {
	return w.Amount + w.Fee
}

// Wallet is an informational projection; Balance is the only authoritative figure.
type Wallet struct {
	UserID             uuid.UUID
	Balance            int64
	Earnings           int64
	PendingOrders      int
	CompletedOrders    int
	PendingBalance     int64
	TotalEarned        int64
	PendingWithdrawals int64
	TotalWithdrawn     int64
}

// LedgerEvent is an outbox record written in the same transaction as the change it describes.
type LedgerEvent struct {
	ID          uuid.UUID  `db:"id"`
	Aggregate   string     `db:"aggregate"`
	AggregateID uuid.UUID  `db:"aggregate_id"`
	EventType   string     `db:"event_type"`
	Payload     []byte     `db:"payload"`
	CreatedAt   time.Time  `db:"created_at"`
	PublishedAt *time.Time `db:"published_at"`
}

const (
	EventOrderCreated        = "order.created"
	EventDeliveryAccepted    = "delivery.accepted"
	EventDeliveryRejected    = "delivery.rejected"
	EventWithdrawalRequested = "withdrawal.requested"
	EventWithdrawalSettled   = "withdrawal.settled"
)
