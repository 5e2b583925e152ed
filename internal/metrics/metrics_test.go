package metrics

import (
	"errors"
	"testing"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLedgerMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordOrderCreated(15000)
	m.RecordDecision(domain.DecisionRejected, 0)
	m.RecordDecision(domain.DecisionAccepted, 15000)
	m.RecordWithdrawalRequested(1000, 100)
	m.RecordWithdrawalSettled(domain.WithdrawalRejected, 1100)
	m.RecordPublished(true)
	m.RecordPublished(false)
	m.RecordError("acceptDelivery", domain.ErrAlreadyDecided)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersCreatedTotal))
	assert.Equal(t, 15000.0, testutil.ToFloat64(m.OrdersCreatedAmountTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EscrowReleasedTotal))
	assert.Equal(t, 15000.0, testutil.ToFloat64(m.EscrowReleasedAmountTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DeliveryDecisionsTotal.WithLabelValues("rejected")))
	assert.Equal(t, 100.0, testutil.ToFloat64(m.WithdrawalFeesTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WithdrawalsSettledTotal.WithLabelValues("rejected")))
	assert.Equal(t, 1100.0, testutil.ToFloat64(m.WithdrawalsRefundedAmountTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OutboxPublishedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OutboxFailedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("acceptDelivery", "conflict")))
}

func TestNilMetrics(t *testing.T) {
	var m *LedgerMetrics
	assert.NotPanics(t, func() {
		m.RecordOrderCreated(1)
		m.RecordDecision(domain.DecisionAccepted, 1)
		m.RecordWithdrawalRequested(1, 1)
		m.RecordWithdrawalSettled(domain.WithdrawalCompleted, 0)
		m.RecordPublished(true)
		m.RecordError("op", errors.New("boom"))
	})
}

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrRole, "authorization"},
		{domain.ErrBelowMinimum, "validation"},
		{domain.ErrDuplicatePayment, "conflict"},
		{domain.ErrOrderNotFound, "not_found"},
		{domain.StorageError(errors.New("boom")), "storage"},
		{errors.New("boom"), "storage"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Kind(tt.err), tt.err.Error())
	}
}
