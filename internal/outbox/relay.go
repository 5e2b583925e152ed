package outbox

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/GlebRadaev/gigledger/internal/config"
	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 4

type EventRepo interface {
	FindUnpublished(ctx context.Context, limit uint32) ([]domain.LedgerEvent, error)
	MarkPublished(ctx context.Context, id uuid.UUID) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.LedgerEvent) error
}

// Relay publishes ledger events written by the services and marks them published.
// Delivery is at least once: a crash between publish and mark republishes the event.
type Relay struct {
	repo           EventRepo
	publisher      Publisher
	metrics        *metrics.LedgerMetrics
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
	inflight       sync.Map
	done           chan struct{}
}

func New(cfg *config.Config, repo EventRepo, publisher Publisher, m *metrics.LedgerMetrics) *Relay {
	return &Relay{
		repo:           repo,
		publisher:      publisher,
		metrics:        m,
		limit:          cfg.OutboxBatch,
		workerPool:     NewWorkerPool(defaultWorkers),
		updateInterval: cfg.OutboxInterval,
		done:           make(chan struct{}),
	}
}

func (r *Relay) Start(ctx context.Context) {
	zap.L().Info("Outbox relay started", zap.Duration("interval", r.updateInterval))
	go r.run(ctx)
}

// Done is closed once the relay has stopped and every queued publish task has finished.
func (r *Relay) Done() <-chan struct{} {
	return r.done
}

func (r *Relay) run(ctx context.Context) {
	defer close(r.done)
	ticker := time.NewTicker(r.updateInterval)
	defer ticker.Stop()
	defer r.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping outbox relay")
			return
		case <-ticker.C:
			r.processEvents(ctx)
		}
	}
}

func (r *Relay) processEvents(ctx context.Context) {
	events, err := r.repo.FindUnpublished(ctx, r.limit)
	if err != nil {
		zap.L().Error("Failed to fetch unpublished events", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, batch := range groupByAggregate(events) {
		aggregateID := batch[0].AggregateID
		if _, loaded := r.inflight.LoadOrStore(aggregateID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := r.workerPool.AddTask(ctx, Task{
				AggregateID: aggregateID,
				Run: func() error {
					defer r.inflight.Delete(aggregateID)
					return r.publishBatch(ctx, batch)
				},
			})
			if err != nil {
				r.inflight.Delete(aggregateID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling events", zap.Error(err))
	}
}

// publishBatch stops at the first failure so an aggregate's events keep their order.
func (r *Relay) publishBatch(ctx context.Context, batch []domain.LedgerEvent) error {
	for _, event := range batch {
		if err := r.publisher.Publish(ctx, event); err != nil {
			r.metrics.RecordPublished(false)
			return fmt.Errorf("failed to publish event %s: %w", event.ID, err)
		}
		r.metrics.RecordPublished(true)

		if err := r.repo.MarkPublished(ctx, event.ID); err != nil {
			return fmt.Errorf("failed to mark event %s published: %w", event.ID, err)
		}
	}
	return nil
}

// groupByAggregate keeps the input order inside each group and across group heads.
func groupByAggregate(events []domain.LedgerEvent) [][]domain.LedgerEvent {
	index := make(map[uuid.UUID]int)
	var groups [][]domain.LedgerEvent
	for _, event := range events {
		i, ok := index[event.AggregateID]
		if !ok {
			i = len(groups)
			index[event.AggregateID] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], event)
	}
	return groups
}
