package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nhamdan/ksapay/internal/domain"
)

func TestRamadanAdjustmentsOutsideRamadan(t *testing.T) {
	policy := domain.DefaultPolicy()
	period := &domain.PayPeriodRecord{PeriodID: "2026-01"}

	breakdown := CalculateRamadanAdjustments(period, policy)
	assert.False(t, breakdown.Applied)
	assert.True(t, breakdown.IftarAllowance.IsZero())
	assert.True(t, breakdown.HoursReduction.IsZero())
}

func TestRamadanAdjustmentsDuringRamadan(t *testing.T) {
	policy := domain.DefaultPolicy()
	period := &domain.PayPeriodRecord{
		PeriodID:        "2026-03",
		IsRamadanPeriod: true,
		ZakatDeduction:  decimal.NewFromInt(250),
		ZakatAmount:     decimal.NewFromInt(250),
		RamadanAdvance:  decimal.NewFromInt(2000),
	}

	breakdown := CalculateRamadanAdjustments(period, policy)

	assert.True(t, breakdown.Applied)
	assert.True(t, breakdown.HoursReduction.Equal(decimal.NewFromInt(2)))
	assert.True(t, breakdown.MaxDailyHours.Equal(decimal.NewFromInt(6)))
	assert.True(t, breakdown.OvertimeAfter.Equal(decimal.NewFromInt(6)))
	assert.True(t, breakdown.ProductivityFactor.Equal(decimal.NewFromFloat(0.95)))
	assert.True(t, breakdown.IftarAllowance.Equal(decimal.NewFromInt(300)))
	assert.True(t, breakdown.SuhoorAllowance.Equal(decimal.NewFromInt(150)))
	assert.True(t, breakdown.TransportationBonus.Equal(decimal.NewFromInt(200)))

	// Zakat and the salary advance pass through untouched
	assert.True(t, breakdown.ZakatDeduction.Equal(decimal.NewFromInt(250)))
	assert.True(t, breakdown.SalaryAdvance.Equal(decimal.NewFromInt(2000)))
}
