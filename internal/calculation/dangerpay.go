package calculation

import (
	"github.com/nhamdan/ksapay/internal/domain"
)

// CalculateDangerPay prices hazardous-duty premiums from the risk-level
// multiplier table. Employees without the hazardous-work flag get a zero
// record regardless of their recorded risk level.
func CalculateDangerPay(emp *domain.EmployeeRecord, policy domain.PolicyConfig) domain.DangerPayBreakdown {
	if !emp.HazardousWork {
		return domain.DangerPayBreakdown{RiskLevel: domain.RiskLow}
	}

	rules := policy.Danger
	level := emp.RiskLevel
	if !level.Valid() {
		level = domain.RiskLow
	}

	multiplier := rules.RiskMultipliers[level]
	base := emp.BasicSalary.Mul(multiplier).Round(2)

	return domain.DangerPayBreakdown{
		Hazardous:         true,
		RiskLevel:         level,
		HazardTypes:       append([]string(nil), emp.HazardTypes...),
		RiskMultiplier:    multiplier,
		BaseAmount:        base,
		TrainingBonus:     rules.TrainingBonus,
		InsuranceCoverage: rules.InsuranceCoverage,
		Total:             base.Add(rules.TrainingBonus),
	}
}
