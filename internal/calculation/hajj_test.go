package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhamdan/ksapay/internal/domain"
)

func TestHajjEligibilityGate(t *testing.T) {
	policy := domain.DefaultPolicy()
	asOf := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		saudi         bool
		serviceYears  int
		sinceLastHajj int
		eligible      bool
	}{
		{
			name:          "Eligible Saudi national",
			saudi:         true,
			serviceYears:  3,
			sinceLastHajj: 6,
			eligible:      true,
		},
		{
			name:          "Non-Saudi is never eligible",
			saudi:         false,
			serviceYears:  10,
			sinceLastHajj: 10,
			eligible:      false,
		},
		{
			name:          "Insufficient service",
			saudi:         true,
			serviceYears:  1,
			sinceLastHajj: 6,
			eligible:      false,
		},
		{
			name:          "Recent Hajj blocks the entitlement",
			saudi:         true,
			serviceYears:  3,
			sinceLastHajj: 4,
			eligible:      false,
		},
		{
			name:          "Boundary values pass",
			saudi:         true,
			serviceYears:  2,
			sinceLastHajj: 5,
			eligible:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp := &domain.EmployeeRecord{
				BasicSalary:        decimal.NewFromInt(8000),
				HireDate:           asOf.AddDate(-tt.serviceYears, 0, -30),
				IsSaudiNational:    tt.saudi,
				YearsSinceLastHajj: tt.sinceLastHajj,
			}

			breakdown := CalculateHajjEntitlement(emp, policy, asOf)
			assert.Equal(t, tt.eligible, breakdown.Eligible)

			if tt.eligible {
				assert.Equal(t, 10, breakdown.PaidLeaveDays)
				assert.True(t, breakdown.Bonus.Equal(decimal.NewFromInt(2000)))
				assert.True(t, breakdown.TravelAllowance.Equal(decimal.NewFromInt(3000)))
				assert.True(t, breakdown.ReturnBonus.Equal(decimal.NewFromInt(1000)))
			} else {
				// Ineligible means zeros, never a proration
				assert.Equal(t, 0, breakdown.PaidLeaveDays)
				assert.True(t, breakdown.Bonus.IsZero())
				assert.Nil(t, breakdown.Spouse)
			}
		})
	}
}

func TestHajjSpouseExtension(t *testing.T) {
	policy := domain.DefaultPolicy()
	asOf := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	emp := &domain.EmployeeRecord{
		BasicSalary:        decimal.NewFromInt(8000),
		HireDate:           asOf.AddDate(-3, 0, -30),
		IsSaudiNational:    true,
		YearsSinceLastHajj: 6,
		MaritalStatus:      domain.Married,
	}

	breakdown := CalculateHajjEntitlement(emp, policy, asOf)
	require.NotNil(t, breakdown.Spouse)
	assert.True(t, breakdown.Spouse.CombinedLeave)
	assert.True(t, breakdown.Spouse.SpouseAllowance.Equal(decimal.NewFromInt(1500)))
	assert.True(t, breakdown.Spouse.FamilyTravelBonus.Equal(decimal.NewFromInt(2000)))

	// Single employees get no spouse record even when the policy allows it
	emp.MaritalStatus = domain.Single
	breakdown = CalculateHajjEntitlement(emp, policy, asOf)
	assert.Nil(t, breakdown.Spouse)

	// Company policy can switch the extension off
	policy.Hajj.SpouseExtension = false
	emp.MaritalStatus = domain.Married
	breakdown = CalculateHajjEntitlement(emp, policy, asOf)
	assert.Nil(t, breakdown.Spouse)
}
