package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nhamdan/ksapay/internal/domain"
)

// CalculateOvertime prices the period's overtime. Weekday overtime consumes
// the tier ladder greedily; during Ramadan periods the ladder is replaced by
// the flat Ramadan multiplier, since overtime already starts after the
// reduced six-hour day. Weekend and holiday overtime are separate hour
// categories with their own rule sets. Statutory ceilings are flagged, never
// clamped.
func CalculateOvertime(emp *domain.EmployeeRecord, period *domain.PayPeriodRecord, policy domain.PolicyConfig) domain.OvertimeBreakdown {
	hourlyRate := emp.HourlyRate(policy.Statutory.WeeklyHours)
	overtimeHours := period.OvertimeHours()

	breakdown := domain.OvertimeBreakdown{
		RegularHours:  period.RegularHours,
		OvertimeHours: overtimeHours,
		HourlyRate:    hourlyRate.Round(2),
		Tiers:         []domain.OvertimeTier{},
	}

	total := decimal.Zero

	if period.IsRamadanPeriod {
		total = total.Add(applyRamadanOvertime(&breakdown, overtimeHours, hourlyRate, policy.Overtime.Ramadan))
	} else {
		total = total.Add(applyTierLadder(&breakdown, overtimeHours, hourlyRate, policy.Overtime.Tiers))
	}

	total = total.Add(applyWeekendOvertime(&breakdown, period, hourlyRate, policy.Overtime.Weekend))
	total = total.Add(applyHolidayOvertime(&breakdown, period, hourlyRate, policy.Overtime.Holiday))

	breakdown.ExceedsMonthlyCap = overtimeHours.GreaterThan(policy.Statutory.MonthlyOvertimeCap)
	breakdown.ExceedsAnnualCap = period.AnnualOvertimeHours.Add(overtimeHours).
		GreaterThan(policy.Statutory.AnnualOvertimeCap)

	breakdown.TotalAmount = total.Round(2)
	return breakdown
}

// applyTierLadder consumes overtime hours greedily from the lowest tier up.
// Zero overtime hours leave the tier list empty.
func applyTierLadder(b *domain.OvertimeBreakdown, hours, hourlyRate decimal.Decimal, tiers []domain.OvertimeTierRule) decimal.Decimal {
	remaining := hours
	total := decimal.Zero

	for i, rule := range tiers {
		if !remaining.IsPositive() {
			break
		}

		tierHours := remaining
		if rule.Hours.IsPositive() && tierHours.GreaterThan(rule.Hours) {
			tierHours = rule.Hours
		}

		amount := tierHours.Mul(hourlyRate).Mul(rule.Multiplier)
		b.Tiers = append(b.Tiers, domain.OvertimeTier{
			Tier:       i + 1,
			Multiplier: rule.Multiplier,
			Hours:      tierHours,
			Amount:     amount.Round(2),
			AppliesTo:  "weekday",
		})

		total = total.Add(amount)
		remaining = remaining.Sub(tierHours)
	}

	return total
}

// applyRamadanOvertime pays all weekday overtime at the flat Ramadan
// multiplier plus the period allowance and iftar bonus.
func applyRamadanOvertime(b *domain.OvertimeBreakdown, hours, hourlyRate decimal.Decimal, rule domain.RamadanOvertimeRule) decimal.Decimal {
	if !hours.IsPositive() {
		return decimal.Zero
	}

	amount := hours.Mul(hourlyRate).Mul(rule.Multiplier)
	b.Tiers = append(b.Tiers, domain.OvertimeTier{
		Tier:       1,
		Multiplier: rule.Multiplier,
		Hours:      hours,
		Amount:     amount.Round(2),
		AppliesTo:  "ramadan",
	})

	b.RamadanAllowance = rule.SpecialAllowance
	b.RamadanIftarBonus = rule.IftarBonus
	return amount.Add(rule.SpecialAllowance).Add(rule.IftarBonus)
}

func applyWeekendOvertime(b *domain.OvertimeBreakdown, period *domain.PayPeriodRecord, hourlyRate decimal.Decimal, rule domain.WeekendOvertimeRule) decimal.Decimal {
	friday := period.FridayOvertimeHours.Mul(hourlyRate).Mul(rule.FridayMultiplier)
	saturday := period.SaturdayOvertimeHours.Mul(hourlyRate).Mul(rule.SaturdayMultiplier)
	amount := friday.Add(saturday)

	bonus := decimal.Zero
	if period.ConsecutiveWeekends && amount.IsPositive() {
		bonus = rule.ConsecutiveBonus
	}

	b.WeekendAmount = amount.Round(2)
	b.WeekendBonus = bonus
	b.WeekendMinimumRest = rule.MinimumRestHours
	return amount.Add(bonus)
}

func applyHolidayOvertime(b *domain.OvertimeBreakdown, period *domain.PayPeriodRecord, hourlyRate decimal.Decimal, rule domain.HolidayOvertimeRule) decimal.Decimal {
	if !period.HolidayOvertimeHours.IsPositive() {
		return decimal.Zero
	}

	kind := period.HolidayKind
	if kind == "" {
		kind = domain.HolidayNational
	}
	multiplier := rule.Multipliers[kind]

	amount := period.HolidayOvertimeHours.Mul(hourlyRate).Mul(multiplier)
	b.HolidayAmount = amount.Round(2)
	b.HolidayBonus = rule.ReportingBonus
	return amount.Add(rule.ReportingBonus)
}
