package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nhamdan/ksapay/internal/domain"
)

func TestNightShiftMinimumHoursThreshold(t *testing.T) {
	policy := domain.DefaultPolicy()
	emp := overtimeEmployee(8660)

	tests := []struct {
		name           string
		nightHours     int64
		expectedAmount decimal.Decimal
		expectedBonus  decimal.Decimal
	}{
		{
			name:           "Below threshold pays nothing",
			nightHours:     3,
			expectedAmount: decimal.Zero,
			expectedBonus:  decimal.Zero,
		},
		{
			name:           "At threshold pays premium and health bonus",
			nightHours:     4,
			expectedAmount: decimal.NewFromInt(40), // 4 * 50 * 0.20
			expectedBonus:  decimal.NewFromInt(100),
		},
		{
			name:           "Well above threshold",
			nightHours:     10,
			expectedAmount: decimal.NewFromInt(100),
			expectedBonus:  decimal.NewFromInt(100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period := &domain.PayPeriodRecord{
				PeriodID:   "2026-01",
				NightHours: decimal.NewFromInt(tt.nightHours),
			}

			shifts := CalculateShiftDifferentials(emp, period, policy)
			assert.True(t, shifts.Night.Amount.Equal(tt.expectedAmount),
				"Expected %s, got %s", tt.expectedAmount, shifts.Night.Amount)
			assert.True(t, shifts.Night.HealthRiskBonus.Equal(tt.expectedBonus))
			// The qualifying window is reported on every night record
			assert.Equal(t, "22:00", shifts.Night.WindowStart)
			assert.Equal(t, "06:00", shifts.Night.WindowEnd)
		})
	}
}

func TestWeekendShiftCompensation(t *testing.T) {
	policy := domain.DefaultPolicy()
	emp := overtimeEmployee(8660)

	period := &domain.PayPeriodRecord{
		PeriodID:     "2026-01",
		WeekendHours: decimal.NewFromInt(8),
	}

	shifts := CalculateShiftDifferentials(emp, period, policy)
	assert.True(t, shifts.Weekend.Amount.Equal(decimal.NewFromInt(80))) // 8 * 50 * 0.20
	assert.True(t, shifts.Weekend.FamilyTimeCompensation.Equal(decimal.NewFromInt(150)))
	assert.True(t, shifts.Weekend.FridayPercent.Equal(decimal.NewFromFloat(0.25)))
	assert.True(t, shifts.Weekend.SaturdayPercent.Equal(decimal.NewFromFloat(0.15)))

	// No weekend hours, no compensation
	shifts = CalculateShiftDifferentials(emp, &domain.PayPeriodRecord{PeriodID: "2026-02"}, policy)
	assert.True(t, shifts.Weekend.Total().IsZero())
}

func TestHolidayShiftPercentByKind(t *testing.T) {
	policy := domain.DefaultPolicy()
	emp := overtimeEmployee(8660)

	period := &domain.PayPeriodRecord{
		PeriodID:     "2026-01",
		HolidayHours: decimal.NewFromInt(8),
		HolidayKind:  domain.HolidayCompany,
	}

	shifts := CalculateShiftDifferentials(emp, period, policy)
	assert.True(t, shifts.Holiday.Amount.Equal(decimal.NewFromInt(160))) // 8 * 50 * 0.40
	assert.Equal(t, domain.HolidayCompany, shifts.Holiday.Kind)

	period.HolidayKind = ""
	shifts = CalculateShiftDifferentials(emp, period, policy)
	assert.Equal(t, domain.HolidayNational, shifts.Holiday.Kind)
	assert.True(t, shifts.Holiday.Amount.Equal(decimal.NewFromInt(200))) // 8 * 50 * 0.50
}

func TestRotatingShiftBonuses(t *testing.T) {
	policy := domain.DefaultPolicy()
	emp := overtimeEmployee(8660)

	period := &domain.PayPeriodRecord{PeriodID: "2026-01", Rotations: 3}
	shifts := CalculateShiftDifferentials(emp, period, policy)

	assert.True(t, shifts.Rotating.Amount.Equal(decimal.NewFromInt(150))) // 3 * 50
	assert.True(t, shifts.Rotating.AdaptationBonus.Equal(decimal.NewFromInt(200)))
	assert.True(t, shifts.Rotating.DisruptionBonus.Equal(decimal.NewFromInt(100)))
	assert.True(t, shifts.Rotating.Total().Equal(decimal.NewFromInt(450)))

	shifts = CalculateShiftDifferentials(emp, &domain.PayPeriodRecord{PeriodID: "2026-02"}, policy)
	assert.True(t, shifts.Rotating.Total().IsZero())
}

func TestOnCallAndCallbackMinimum(t *testing.T) {
	policy := domain.DefaultPolicy()
	emp := overtimeEmployee(8660)

	period := &domain.PayPeriodRecord{
		PeriodID:      "2026-01",
		OnCallHours:   decimal.NewFromInt(10),
		CallbackHours: decimal.NewFromInt(1),
	}

	shifts := CalculateShiftDifferentials(emp, period, policy)

	assert.True(t, shifts.OnCall.OnCallAmount.Equal(decimal.NewFromInt(250))) // 10 * 25
	// A one-hour callback is billed at the two-hour minimum
	assert.True(t, shifts.OnCall.BilledHours.Equal(decimal.NewFromInt(2)))
	assert.True(t, shifts.OnCall.CallbackAmount.Equal(decimal.NewFromInt(150))) // 2 * 50 * 1.5
	assert.True(t, shifts.OnCall.Total().Equal(decimal.NewFromInt(400)))
}
