package domain

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_WithdrawalTotalFee(t *testing.T) {
	tests := []struct {
		name   string
		pct    string
		amount int64
		want   int64
	}{
		{name: "Ten percent", pct: "10", amount: 1000, want: 100},
		{name: "Zero percent", pct: "0", amount: 1000, want: 0},
		{name: "Rounds half up", pct: "5", amount: 1010, want: 51},
		{name: "Rounds down", pct: "1.5", amount: 1010, want: 15},
		{name: "Fractional percent", pct: "1.85", amount: 5000, want: 93},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{WithdrawFeePercentage: decimal.RequireFromString(tt.pct), MinFee: 50}
			fee, total, ok := s.WithdrawalTotal(tt.amount)
			require.True(t, ok)
			assert.Equal(t, tt.want, fee)
			assert.Equal(t, tt.amount+tt.want, total)
		})
	}
}

func TestSettings_WithdrawalTotal(t *testing.T) {
	tests := []struct {
		name      string
		pct       string
		amount    int64
		wantFee   int64
		wantTotal int64
		wantOK    bool
	}{
		{name: "Ten percent", pct: "10", amount: 1000, wantFee: 100, wantTotal: 1100, wantOK: true},
		{name: "Total at the int64 limit", pct: "0", amount: math.MaxInt64, wantFee: 0, wantTotal: math.MaxInt64, wantOK: true},
		{name: "Fee overflows the total", pct: "10", amount: math.MaxInt64 - 10},
		{name: "Fee alone overflows", pct: "250", amount: math.MaxInt64 / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{WithdrawFeePercentage: decimal.RequireFromString(tt.pct)}
			fee, total, ok := s.WithdrawalTotal(tt.amount)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantFee, fee)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		err  error
		kind error
	}{
		{ErrRole, ErrAuthorization},
		{ErrNotOwner, ErrAuthorization},
		{ErrAmountMismatch, ErrValidation},
		{ErrInsufficientBalance, ErrValidation},
		{ErrBelowMinimum, ErrValidation},
		{ErrDuplicatePayment, ErrConflict},
		{ErrAlreadyDecided, ErrConflict},
		{ErrOrderCompleted, ErrConflict},
		{ErrAlreadySettled, ErrConflict},
		{ErrTxnNotPending, ErrConflict},
		{ErrListingNotFound, ErrNotFound},
		{ErrWithdrawalNotFound, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.True(t, IsKnown(tt.err))
		})
	}
}

func TestStorageError(t *testing.T) {
	raw := errors.New("connection reset")

	wrapped := StorageError(raw)
	assert.ErrorIs(t, wrapped, ErrStorage)
	assert.ErrorIs(t, wrapped, raw)

	assert.Equal(t, ErrAlreadyDecided, StorageError(ErrAlreadyDecided))
	assert.NoError(t, StorageError(nil))
}

func TestNewLedgerEvent(t *testing.T) {
	orderID := uuid.New()
	payload := OrderCreatedPayload{OrderID: orderID, Amount: 15000}

	event, err := NewLedgerEvent(AggregateOrder, orderID, EventOrderCreated, payload)
	require.NoError(t, err)

	assert.Equal(t, AggregateOrder, event.Aggregate)
	assert.Equal(t, orderID, event.AggregateID)
	assert.Equal(t, EventOrderCreated, event.EventType)
	assert.NotEqual(t, uuid.Nil, event.ID)

	var decoded OrderCreatedPayload
	require.NoError(t, json.Unmarshal(event.Payload, &decoded))
	assert.Equal(t, payload, decoded)
}

func TestNewLedgerEvent_MarshalError(t *testing.T) {
	_, err := NewLedgerEvent(AggregateOrder, uuid.New(), EventOrderCreated, make(chan int))
	assert.Error(t, err)
}

func TestWithdrawalTotalAndDelivery(t *testing.T) {
	w := Withdrawal{Amount: 1000, Fee: 100}
	assert.Equal(t, int64(1100), w.Total())

	d := Delivery{}
	assert.False(t, d.Decided())
	accepted := DecisionAccepted
	d.Decision = &accepted
	assert.True(t, d.Decided())
}
