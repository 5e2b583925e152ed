package settingsrepo

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/pg"
	"github.com/shopspring/decimal"
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

// Get reads the withdrawal settings. Missing keys leave their zero value.
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	query := `
        SELECT key, value
        FROM settings
        WHERE key = ANY($1)
    `
	keys := []string{domain.SettingWithdrawFeePercentage, domain.SettingMinWithdrawAmount, domain.SettingMinFee}
	rows, err := r.db.Query(ctx, query, keys)
	if err != nil {
		zap.L().Error("can't get settings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	settings := domain.Settings{WithdrawFeePercentage: decimal.Zero}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			zap.L().Error("can't scan setting row", zap.Error(err))
			return nil, err
		}
		num, err := decimal.NewFromString(value)
		if err != nil {
			zap.L().Error("invalid setting value", zap.String("key", key), zap.String("value", value), zap.Error(err))
			return nil, fmt.Errorf("setting %s: %w", key, err)
		}
		switch key {
		case domain.SettingWithdrawFeePercentage:
			settings.WithdrawFeePercentage = num
		case domain.SettingMinWithdrawAmount:
			settings.MinWithdrawAmount = num.IntPart()
		case domain.SettingMinFee:
			settings.MinFee = num.IntPart()
		}
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate settings", zap.Error(err))
		return nil, err
	}
	return &settings, nil
}
