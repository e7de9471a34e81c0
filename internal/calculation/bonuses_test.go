package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhamdan/ksapay/internal/domain"
)

var bonusAsOf = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestIndividualBonusByRating(t *testing.T) {
	policy := domain.DefaultPolicy()

	tests := []struct {
		name           string
		rating         domain.PerformanceRating
		expectedAmount decimal.Decimal
	}{
		{
			name:           "Exceptional pays 25 percent",
			rating:         domain.RatingExceptional,
			expectedAmount: decimal.NewFromInt(2500),
		},
		{
			name:           "Exceeds pays 15 percent",
			rating:         domain.RatingExceeds,
			expectedAmount: decimal.NewFromInt(1500),
		},
		{
			name:           "Meets pays 5 percent",
			rating:         domain.RatingMeets,
			expectedAmount: decimal.NewFromInt(500),
		},
		{
			name:           "Below pays nothing",
			rating:         domain.RatingBelow,
			expectedAmount: decimal.Zero,
		},
		{
			name:           "Missing rating defaults to meets",
			rating:         "",
			expectedAmount: decimal.NewFromInt(500),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp := &domain.EmployeeRecord{
				BasicSalary:       decimal.NewFromInt(10000),
				HireDate:          bonusAsOf.AddDate(-1, 0, -30),
				PerformanceRating: tt.rating,
			}
			period := &domain.PayPeriodRecord{PeriodID: "2026-01"}

			breakdown := CalculatePerformanceBonuses(emp, period, policy, bonusAsOf)
			assert.True(t, breakdown.IndividualAmount.Equal(tt.expectedAmount),
				"Expected %s, got %s", tt.expectedAmount, breakdown.IndividualAmount)
		})
	}
}

func TestLeadershipBonusIsPositionGated(t *testing.T) {
	policy := domain.DefaultPolicy()
	period := &domain.PayPeriodRecord{PeriodID: "2026-01"}

	staff := &domain.EmployeeRecord{
		BasicSalary:   decimal.NewFromInt(10000),
		HireDate:      bonusAsOf.AddDate(-1, 0, -30),
		PositionLevel: domain.PositionStaff,
	}
	assert.True(t, CalculatePerformanceBonuses(staff, period, policy, bonusAsOf).LeadershipBonus.IsZero())

	manager := &domain.EmployeeRecord{
		BasicSalary:   decimal.NewFromInt(10000),
		HireDate:      bonusAsOf.AddDate(-1, 0, -30),
		PositionLevel: domain.PositionExecutive,
	}
	assert.True(t, CalculatePerformanceBonuses(manager, period, policy, bonusAsOf).LeadershipBonus.Equal(decimal.NewFromInt(1000)))
}

func TestTeamAndCompanyBonuses(t *testing.T) {
	policy := domain.DefaultPolicy()
	emp := &domain.EmployeeRecord{
		BasicSalary: decimal.NewFromInt(10000),
		HireDate:    bonusAsOf.AddDate(-1, 0, -30),
	}
	period := &domain.PayPeriodRecord{
		PeriodID:           "2026-01",
		TeamRating:         decimal.NewFromFloat(4.5),
		RevenueAchievement: decimal.NewFromInt(110),
	}

	breakdown := CalculatePerformanceBonuses(emp, period, policy, bonusAsOf)

	assert.True(t, breakdown.TeamAmount.Equal(decimal.NewFromInt(450)))
	// 10000 * 0.02 * 110 / 100
	assert.True(t, breakdown.CompanyAmount.Equal(decimal.NewFromInt(220)),
		"Expected 220, got %s", breakdown.CompanyAmount)
}

func TestKPIAndRecognitionPassThrough(t *testing.T) {
	policy := domain.DefaultPolicy()
	emp := &domain.EmployeeRecord{
		BasicSalary: decimal.NewFromInt(10000),
		HireDate:    bonusAsOf.AddDate(-1, 0, -30),
	}
	period := &domain.PayPeriodRecord{
		PeriodID: "2026-01",
		KPIBonuses: []domain.KPILineItem{
			{Name: "delivery", BonusAmount: decimal.NewFromInt(300)},
		},
		RecognitionAwards: []domain.RecognitionAward{
			{AwardType: "employee_of_month", Amount: decimal.NewFromInt(500)},
		},
	}

	breakdown := CalculatePerformanceBonuses(emp, period, policy, bonusAsOf)

	require.Len(t, breakdown.KPIBonuses, 1)
	require.Len(t, breakdown.Recognition, 1)
	assert.True(t, breakdown.KPIBonuses[0].BonusAmount.Equal(decimal.NewFromInt(300)))
	assert.True(t, breakdown.Recognition[0].Amount.Equal(decimal.NewFromInt(500)))
}

func TestRetentionBonusMilestone(t *testing.T) {
	policy := domain.DefaultPolicy()
	period := &domain.PayPeriodRecord{PeriodID: "2026-01"}

	junior := &domain.EmployeeRecord{
		BasicSalary: decimal.NewFromInt(10000),
		HireDate:    bonusAsOf.AddDate(-4, 0, 0),
	}
	assert.Empty(t, CalculatePerformanceBonuses(junior, period, policy, bonusAsOf).Retention)

	veteran := &domain.EmployeeRecord{
		BasicSalary: decimal.NewFromInt(10000),
		HireDate:    bonusAsOf.AddDate(-5, 0, -30),
	}
	breakdown := CalculatePerformanceBonuses(veteran, period, policy, bonusAsOf)
	require.Len(t, breakdown.Retention, 1)

	retention := breakdown.Retention[0]
	assert.True(t, retention.Amount.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, 12, retention.Vesting.VestingMonths)
	assert.True(t, retention.Vesting.UnvestedAmount.IsZero())
	assert.NotEmpty(t, retention.Vesting.ClawbackConditions)
}
