package calculation

import (
	"github.com/nhamdan/ksapay/internal/domain"
)

// ValidateCompliance re-checks a computed result against the statutory
// floors and ceilings and returns the structured violation report. This is
// deliberately an independent second pass over the result rather than a
// reuse of the scoring logic, so the score and the violation list can be
// cross-checked against each other.
func ValidateCompliance(result *domain.PayrollResult, companyPolicy *domain.CompanyPolicyRecord) *domain.ComplianceReport {
	policy := companyPolicy.Resolve()

	report := &domain.ComplianceReport{
		GOSICompliant:   true,
		Violations:      []domain.ComplianceViolation{},
		Recommendations: []string{},
	}

	if result.TotalGross.LessThan(policy.Statutory.MinimumWage) {
		report.Violations = append(report.Violations, domain.ComplianceViolation{
			Type:               domain.ViolationMinimumWage,
			Severity:           domain.SeverityCritical,
			Description:        "Employee salary is below minimum wage",
			DescriptionArabic:  "راتب الموظف أقل من الحد الأدنى للأجور",
			ResolutionRequired: true,
			PenaltyRisk:        85,
		})
	}

	if result.Overtime.OvertimeHours.GreaterThan(policy.Statutory.MonthlyOvertimeCap) {
		report.Violations = append(report.Violations, domain.ComplianceViolation{
			Type:               domain.ViolationOvertimeLimit,
			Severity:           domain.SeverityHigh,
			Description:        "Monthly overtime hours exceed legal limit",
			DescriptionArabic:  "ساعات العمل الإضافي الشهرية تتجاوز الحد القانوني",
			ResolutionRequired: true,
			PenaltyRisk:        70,
		})
	}

	if result.Overtime.ExceedsAnnualCap {
		report.Violations = append(report.Violations, domain.ComplianceViolation{
			Type:               domain.ViolationWorkingHours,
			Severity:           domain.SeverityMedium,
			Description:        "Annual overtime hours exceed the 180-hour ceiling",
			DescriptionArabic:  "ساعات العمل الإضافي السنوية تتجاوز سقف ١٨٠ ساعة",
			ResolutionRequired: false,
			PenaltyRisk:        40,
		})
	}

	housingFloor := result.TotalGross.Mul(policy.Statutory.HousingShareOfGross)
	if result.Allowances.Housing.Amount.LessThan(housingFloor) {
		report.Recommendations = append(report.Recommendations,
			"Housing allowance is below 15% of gross pay; review the housing policy for this grade")
	}

	report.LaborLawCompliant = len(report.Violations) == 0
	return report
}
