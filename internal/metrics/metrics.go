package metrics

import (
	"errors"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gigledger"

// LedgerMetrics counts money movements. A nil *LedgerMetrics records nothing.
type LedgerMetrics struct {
	OrdersCreatedTotal       prometheus.Counter
	OrdersCreatedAmountTotal prometheus.Counter

	EscrowReleasedTotal       prometheus.Counter
	EscrowReleasedAmountTotal prometheus.Counter
	DeliveryDecisionsTotal    *prometheus.CounterVec

	WithdrawalsRequestedTotal       prometheus.Counter
	WithdrawalsRequestedAmountTotal prometheus.Counter
	WithdrawalFeesTotal             prometheus.Counter
	WithdrawalsSettledTotal         *prometheus.CounterVec
	WithdrawalsRefundedAmountTotal  prometheus.Counter

	OutboxPublishedTotal prometheus.Counter
	OutboxFailedTotal    prometheus.Counter

	ErrorsTotal *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *LedgerMetrics {
	factory := promauto.With(reg)
	return &LedgerMetrics{
		OrdersCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders paid into escrow",
		}),
		OrdersCreatedAmountTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_amount_total",
			Help:      "Amount paid into escrow",
		}),
		EscrowReleasedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "escrow_released_total",
			Help:      "Orders whose escrow was released to the seller",
		}),
		EscrowReleasedAmountTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "escrow_released_amount_total",
			Help:      "Amount released to sellers",
		}),
		DeliveryDecisionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_decisions_total",
			Help:      "Buyer decisions on deliveries",
		}, []string{"decision"}),
		WithdrawalsRequestedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withdrawals_requested_total",
			Help:      "Withdrawal requests accepted",
		}),
		WithdrawalsRequestedAmountTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withdrawals_requested_amount_total",
			Help:      "Amount requested for withdrawal, fees excluded",
		}),
		WithdrawalFeesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withdrawal_fees_total",
			Help:      "Fees reserved on withdrawal requests",
		}),
		WithdrawalsSettledTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withdrawals_settled_total",
			Help:      "Withdrawals settled by an operator",
		}, []string{"decision"}),
		WithdrawalsRefundedAmountTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withdrawals_refunded_amount_total",
			Help:      "Amount returned to sellers by rejected withdrawals",
		}),
		OutboxPublishedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_published_total",
			Help:      "Ledger events published to the broker",
		}),
		OutboxFailedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_failed_total",
			Help:      "Ledger event publish attempts that failed",
		}),
		ErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Failed ledger operations by error kind",
		}, []string{"operation", "kind"}),
	}
}

func (m *LedgerMetrics) RecordOrderCreated(amount int64) {
	if m == nil {
		return
	}
	m.OrdersCreatedTotal.Inc()
	m.OrdersCreatedAmountTotal.Add(float64(amount))
}

func (m *LedgerMetrics) RecordDecision(decision domain.Decision, released int64) {
	if m == nil {
		return
	}
	m.DeliveryDecisionsTotal.WithLabelValues(string(decision)).Inc()
	if decision == domain.DecisionAccepted {
		m.EscrowReleasedTotal.Inc()
		m.EscrowReleasedAmountTotal.Add(float64(released))
	}
}

func (m *LedgerMetrics) RecordWithdrawalRequested(amount, fee int64) {
	if m == nil {
		return
	}
	m.WithdrawalsRequestedTotal.Inc()
	m.WithdrawalsRequestedAmountTotal.Add(float64(amount))
	m.WithdrawalFeesTotal.Add(float64(fee))
}

func (m *LedgerMetrics) RecordWithdrawalSettled(status domain.WithdrawalStatus, refunded int64) {
	if m == nil {
		return
	}
	m.WithdrawalsSettledTotal.WithLabelValues(string(status)).Inc()
	if refunded > 0 {
		m.WithdrawalsRefundedAmountTotal.Add(float64(refunded))
	}
}

func (m *LedgerMetrics) RecordPublished(ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.OutboxPublishedTotal.Inc()
		return
	}
	m.OutboxFailedTotal.Inc()
}

// RecordError labels err by its domain kind.
func (m *LedgerMetrics) RecordError(operation string, err error) {
	if m == nil || err == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(operation, Kind(err)).Inc()
}

func Kind(err error) string {
	switch {
	case errors.Is(err, domain.ErrAuthorization):
		return "authorization"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "storage"
	}
}
