package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nhamdan/ksapay/internal/domain"
)

// CalculatePerformanceBonuses derives the individual, team and company
// bonuses from the rating tables, passes the period's KPI and recognition
// line items through untouched, and gates the retention bonus on the tenure
// milestone.
func CalculatePerformanceBonuses(emp *domain.EmployeeRecord, period *domain.PayPeriodRecord, policy domain.PolicyConfig, asOf time.Time) domain.BonusBreakdown {
	rules := policy.Bonuses

	rating := emp.PerformanceRating
	if rating == "" {
		rating = domain.RatingMeets
	}

	breakdown := domain.BonusBreakdown{
		Rating:           rating,
		IndividualAmount: emp.BasicSalary.Mul(rules.RatingMultipliers[rating]).Round(2),
		TeamAmount:       period.TeamRating.Mul(rules.TeamRatingRate).Round(2),
		CompanyAmount:    companyBonus(emp.BasicSalary, period.RevenueAchievement, rules),
		KPIBonuses:       append([]domain.KPILineItem(nil), period.KPIBonuses...),
		Recognition:      append([]domain.RecognitionAward(nil), period.RecognitionAwards...),
	}

	if emp.PositionLevel.IsManagerial() {
		breakdown.LeadershipBonus = rules.LeadershipBonus
	}

	if retention := retentionBonus(emp, rules, asOf); retention != nil {
		breakdown.Retention = []domain.RetentionBonus{*retention}
	}

	return breakdown
}

// companyBonus is the profit-sharing slice: a fixed percent of basic salary
// scaled by the period's revenue-target achievement.
func companyBonus(basicSalary, revenueAchievement decimal.Decimal, rules domain.BonusRules) decimal.Decimal {
	return basicSalary.
		Mul(rules.ProfitSharingPercent).
		Mul(revenueAchievement).
		Div(decimal.NewFromInt(100)).
		Round(2)
}

// retentionBonus is milestone-gated. The vesting schedule and clawback
// conditions are metadata for downstream HR systems, not enforced here.
func retentionBonus(emp *domain.EmployeeRecord, rules domain.BonusRules, asOf time.Time) *domain.RetentionBonus {
	serviceYears := emp.YearsOfService(asOf)
	if serviceYears < rules.RetentionMilestone {
		return nil
	}

	return &domain.RetentionBonus{
		TenureMilestone: serviceYears,
		Amount:          rules.RetentionBonus,
		Vesting: domain.VestingSchedule{
			TotalAmount:        rules.RetentionBonus,
			VestingMonths:      rules.RetentionVestingMonths,
			VestedAmount:       rules.RetentionBonus,
			UnvestedAmount:     decimal.Zero,
			ClawbackConditions: []string{"voluntary_resignation_within_2_years"},
		},
	}
}
