package calculation

import (
	"github.com/nhamdan/ksapay/internal/domain"
)

// CalculateRamadanAdjustments derives the reduced-hours adjustment and the
// Ramadan allowances. Outside Ramadan periods every field is zero. Zakat and
// salary-advance figures are pass-through period data, reported untouched.
func CalculateRamadanAdjustments(period *domain.PayPeriodRecord, policy domain.PolicyConfig) domain.RamadanBreakdown {
	if !period.IsRamadanPeriod {
		return domain.RamadanBreakdown{}
	}

	rules := policy.Ramadan
	return domain.RamadanBreakdown{
		Applied:             true,
		HoursReduction:      rules.HoursReduction,
		MaxDailyHours:       policy.Overtime.Ramadan.MaxDailyHours,
		OvertimeAfter:       policy.Overtime.Ramadan.OvertimeAfter,
		ProductivityFactor:  rules.ProductivityFactor,
		IftarAllowance:      rules.IftarAllowance,
		SuhoorAllowance:     rules.SuhoorAllowance,
		TransportationBonus: rules.TransportationBonus,
		ZakatDeduction:      period.ZakatDeduction,
		ZakatAmount:         period.ZakatAmount,
		SalaryAdvance:       period.RamadanAdvance,
	}
}
