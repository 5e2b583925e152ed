package eventrepo

import (
	"context"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Add(ctx context.Context, event *domain.LedgerEvent) error {
	query := `
        INSERT INTO ledger_events (id, aggregate, aggregate_id, event_type, payload, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query, event.ID, event.Aggregate, event.AggregateID, event.EventType, event.Payload, event.CreatedAt)
	if err != nil {
		zap.L().Error("can't save ledger event", zap.String("event_type", event.EventType), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindUnpublished(ctx context.Context, limit uint32) ([]domain.LedgerEvent, error) {
	query := `
        SELECT id, aggregate, aggregate_id, event_type, payload, created_at, published_at
        FROM ledger_events
        WHERE published_at IS NULL
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get unpublished events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.LedgerEvent
	for rows.Next() {
		var e domain.LedgerEvent
		err := rows.Scan(&e.ID, &e.Aggregate, &e.AggregateID, &e.EventType, &e.Payload, &e.CreatedAt, &e.PublishedAt)
		if err != nil {
			zap.L().Error("can't scan event row", zap.Error(err))
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate event rows", zap.Error(err))
		return nil, err
	}
	return events, nil
}

func (r *Repository) MarkPublished(ctx context.Context, id uuid.UUID) error {
	query := `
        UPDATE ledger_events
        SET published_at = NOW()
        WHERE id = $1 AND published_at IS NULL
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to mark event published", zap.Error(err))
		return err
	}
	return nil
}
