package dto

import (
	"testing"
	"time"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryResponse(t *testing.T) {
	created := time.Date(2024, 12, 9, 16, 9, 57, 0, time.UTC)
	d := &domain.Delivery{ID: uuid.New(), OrderID: uuid.New(), ArtifactLocation: "s3://A", Status: domain.DeliveryStatusPending, CreatedAt: created}

	resp := NewDeliveryResponse(d)
	assert.Nil(t, resp.Decision)
	assert.Nil(t, resp.DecidedAt)
	assert.Equal(t, "2024-12-09T16:09:57Z", resp.CreatedAt)

	decision := domain.DecisionRejected
	d.Decision = &decision
	d.DecidedAt = &created
	resp = NewDeliveryResponse(d)
	require.NotNil(t, resp.Decision)
	assert.Equal(t, "rejected", *resp.Decision)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2024-12-09T16:09:57Z", *resp.DecidedAt)
}

func TestNewWithdrawalResponse(t *testing.T) {
	operator := uuid.New()
	w := domain.Withdrawal{ID: uuid.New(), TransactionID: uuid.New(), Amount: 1000, Fee: 100, Status: domain.WithdrawalRejected, SettledBy: &operator}

	resp := NewWithdrawalsResponse([]domain.Withdrawal{w})
	require.Len(t, resp, 1)
	assert.Equal(t, int64(1100), resp[0].Total)
	assert.Equal(t, operator.String(), *resp[0].SettledBy)
	assert.Nil(t, resp[0].SettledAt)
}
