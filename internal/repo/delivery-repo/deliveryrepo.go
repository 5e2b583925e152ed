package deliveryrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const deliveryColumns = `id, order_id, artifact_location, status, decision, created_at, decided_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanDelivery(row pgx.Row) (*domain.Delivery, error) {
	var d domain.Delivery
	err := row.Scan(&d.ID, &d.OrderID, &d.ArtifactLocation, &d.Status, &d.Decision, &d.CreatedAt, &d.DecidedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, delivery *domain.Delivery) error {
	query := `
        INSERT INTO deliveries (id, order_id, artifact_location, status, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, delivery.ID, delivery.OrderID, delivery.ArtifactLocation, delivery.Status, delivery.CreatedAt)
	if err != nil {
		zap.L().Error("can't save delivery", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE id = $1`
	delivery, err := scanDelivery(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find delivery", zap.Error(err))
		return nil, err
	}
	return delivery, nil
}

// LockByID must be called after the parent order is locked.
func (r *Repository) LockByID(ctx context.Context, id uuid.UUID) (*domain.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE id = $1 FOR UPDATE`
	delivery, err := scanDelivery(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock delivery", zap.Error(err))
		return nil, err
	}
	return delivery, nil
}

// Decide records the decision on an undecided delivery. It returns nil when the
// delivery was already decided.
func (r *Repository) Decide(ctx context.Context, id uuid.UUID, status domain.DeliveryStatus, decision domain.Decision) (*domain.Delivery, error) {
	query := `
        UPDATE deliveries
        SET status = $2, decision = $3, decided_at = NOW()
        WHERE id = $1 AND decision IS NULL
        RETURNING ` + deliveryColumns
	delivery, err := scanDelivery(r.db.QueryRow(ctx, query, id, status, decision))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to decide delivery", zap.Error(err))
		return nil, err
	}
	return delivery, nil
}

// RejectUndecidedSiblings force-rejects every other undecided delivery of the order.
func (r *Repository) RejectUndecidedSiblings(ctx context.Context, orderID, acceptedID uuid.UUID) ([]uuid.UUID, error) {
	query := `
        UPDATE deliveries
        SET status = $3, decision = $4, decided_at = NOW()
        WHERE order_id = $1 AND id <> $2 AND decision IS NULL
        RETURNING id
    `
	rows, err := r.db.Query(ctx, query, orderID, acceptedID, domain.DeliveryStatusRejected, domain.DecisionRejected)
	if err != nil {
		zap.L().Error("failed to reject sibling deliveries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan rejected delivery id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate rejected deliveries", zap.Error(err))
		return nil, err
	}
	return ids, nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]domain.Delivery, error) {
	query := `
        SELECT ` + deliveryColumns + `
        FROM deliveries
        WHERE order_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get deliveries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deliveries []domain.Delivery
	for rows.Next() {
		delivery, err := scanDelivery(rows)
		if err != nil {
			zap.L().Error("can't scan delivery row", zap.Error(err))
			return nil, err
		}
		deliveries = append(deliveries, *delivery)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate delivery rows", zap.Error(err))
		return nil, err
	}
	return deliveries, nil
}
