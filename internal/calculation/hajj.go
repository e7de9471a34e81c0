package calculation

import (
	"time"

	"github.com/nhamdan/ksapay/internal/domain"
)

// CalculateHajjEntitlement evaluates the pilgrimage-leave gate: Saudi
// national, minimum service, and minimum years since the last Hajj. It is a
// boolean-gated lookup; ineligible employees get a zero record, never a
// proration.
func CalculateHajjEntitlement(emp *domain.EmployeeRecord, policy domain.PolicyConfig, asOf time.Time) domain.HajjBreakdown {
	rules := policy.Hajj
	serviceYears := emp.YearsOfService(asOf)

	breakdown := domain.HajjBreakdown{
		YearsOfService:     serviceYears,
		YearsSinceLastHajj: emp.YearsSinceLastHajj,
	}

	eligible := emp.IsSaudiNational &&
		serviceYears >= rules.MinServiceYears &&
		emp.YearsSinceLastHajj >= rules.MinYearsSinceHajj
	if !eligible {
		return breakdown
	}

	breakdown.Eligible = true
	breakdown.LeaveDays = rules.LeaveDays
	breakdown.PaidLeaveDays = rules.LeaveDays
	breakdown.Bonus = rules.Bonus
	breakdown.TravelAllowance = rules.TravelAllowance
	breakdown.ReturnBonus = rules.ReturnBonus

	if rules.SpouseExtension && emp.MaritalStatus == domain.Married {
		breakdown.Spouse = &domain.HajjSpouseEntitlement{
			Eligible:          true,
			CombinedLeave:     true,
			SpouseAllowance:   rules.SpouseAllowance,
			FamilyTravelBonus: rules.FamilyTravelBonus,
		}
	}

	return breakdown
}
