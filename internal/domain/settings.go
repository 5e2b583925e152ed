package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	SettingWithdrawFeePercentage = "withdraw_fee_percentage"
	SettingMinWithdrawAmount     = "min_withdraw_amount"
	SettingMinFee                = "min_fee"
)

var (
	hundred   = decimal.NewFromInt(100)
	maxAmount = decimal.NewFromInt(math.MaxInt64)
)

type Settings struct {
	WithdrawFeePercentage decimal.Decimal
	MinWithdrawAmount     int64
	// MinFee is loaded for completeness but is not applied as a floor on the withdrawal fee.
	MinFee int64
}

// WithdrawalTotal returns the fee, round(amount * pct / 100) half away from zero,
// and amount plus fee. ok is false when either does not fit in int64, so no
// balance could cover the request.
func (s Settings) WithdrawalTotal(amount int64) (fee, total int64, ok bool) {
	f := s.fee(amount)
	t := f.Add(decimal.NewFromInt(amount))
	if f.GreaterThan(maxAmount) || t.GreaterThan(maxAmount) {
		return 0, 0, false
	}
	return f.IntPart(), t.IntPart(), true
}

func (s Settings) fee(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount).
		Mul(s.WithdrawFeePercentage).
		Div(hundred).
		Round(0)
}
