package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nhamdan/ksapay/internal/domain"
)

// CalculateEOSB computes the end-of-service settlement using the Saudi
// tiered formula: 15 wage-days per year for the first five service years,
// 30 wage-days per year beyond them. The tiers are computed independently
// and summed; a tier the employee's service does not reach contributes zero.
// Outside termination runs the result is an accrual projection.
func CalculateEOSB(emp *domain.EmployeeRecord, period *domain.PayPeriodRecord, policy domain.PolicyConfig, asOf time.Time) domain.EOSBBreakdown {
	rules := policy.EOSB
	dailyWage := emp.DailyWage()
	serviceYears := emp.YearsOfService(asOf)
	serviceMonths := emp.MonthsOfService(asOf)

	breakdown := domain.EOSBBreakdown{
		Projection:    !period.TerminationRun,
		ServiceYears:  serviceYears,
		ServiceMonths: serviceMonths,
		DailyWage:     dailyWage.Round(2),

		AllowancesIncluded: append([]string(nil), rules.AllowancesIncluded...),
		AllowancesExcluded: append([]string(nil), rules.AllowancesExcluded...),
	}

	severance := decimal.Zero
	from := 0
	for _, rule := range rules.Tiers {
		tierYears := yearsInTier(serviceYears, from, rule.MaxYears)
		amount := tierYears.
			Mul(decimal.NewFromInt(int64(rule.DaysPerYear))).
			Mul(dailyWage)

		breakdown.Tiers = append(breakdown.Tiers, domain.EOSBTier{
			FromYears:   from,
			ToYears:     rule.MaxYears,
			DaysPerYear: rule.DaysPerYear,
			Years:       tierYears,
			Amount:      amount.Round(2),
		})

		severance = severance.Add(amount)
		from = rule.MaxYears
	}
	breakdown.SeveranceTotal = severance.Round(2)

	unusedDays := decimal.NewFromInt(int64(emp.UnusedLeaveDays))
	breakdown.UnusedLeaveDays = unusedDays
	breakdown.UnusedLeavePay = unusedDays.Mul(dailyWage).Round(2)

	breakdown.RequiredNoticeDays = policy.Statutory.RequiredNoticeDays
	breakdown.NoticeDaysServed = emp.NoticeDaysServed
	shortfall := policy.Statutory.RequiredNoticeDays - emp.NoticeDaysServed
	if shortfall > 0 {
		breakdown.NoticePay = decimal.NewFromInt(int64(shortfall)).Mul(dailyWage).Round(2)
	}

	if serviceYears >= rules.LoyaltyBonusYears {
		breakdown.LoyaltyBonus = rules.LoyaltyBonus
	}
	if serviceYears >= rules.LongServiceYears {
		breakdown.LongServiceAward = rules.LongServiceAward
	}

	breakdown.Total = breakdown.SeveranceTotal.
		Add(breakdown.UnusedLeavePay).
		Add(breakdown.NoticePay).
		Add(breakdown.LoyaltyBonus).
		Add(breakdown.LongServiceAward)

	return breakdown
}

// yearsInTier returns how many whole service years fall inside a tier's
// [from, max) range. A max of zero marks the open-ended final tier.
func yearsInTier(serviceYears, from, max int) decimal.Decimal {
	if serviceYears <= from {
		return decimal.Zero
	}
	years := serviceYears - from
	if max > 0 && serviceYears > max {
		years = max - from
	}
	return decimal.NewFromInt(int64(years))
}
