package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nhamdan/ksapay/internal/domain"
)

// CalculateShiftDifferentials prices the five independent shift premiums.
// Shift hours are their own category in the period record; they never feed
// the overtime ladder, so an hour is paid under exactly one rule set.
func CalculateShiftDifferentials(emp *domain.EmployeeRecord, period *domain.PayPeriodRecord, policy domain.PolicyConfig) domain.ShiftBreakdown {
	hourlyRate := emp.HourlyRate(policy.Statutory.WeeklyHours)
	rules := policy.Shifts

	return domain.ShiftBreakdown{
		Night:    calculateNightShift(period, hourlyRate, rules),
		Weekend:  calculateWeekendShift(period, hourlyRate, rules),
		Holiday:  calculateHolidayShift(period, hourlyRate, rules),
		Rotating: calculateRotatingShift(period, rules),
		OnCall:   calculateOnCall(period, hourlyRate, rules),
	}
}

// calculateNightShift pays the night premium only once the qualifying-hours
// threshold is met; below it the whole component is zero.
func calculateNightShift(period *domain.PayPeriodRecord, hourlyRate decimal.Decimal, rules domain.ShiftRules) domain.NightShift {
	night := domain.NightShift{
		Hours:       period.NightHours,
		Percent:     rules.NightPercent,
		WindowStart: rules.NightStart,
		WindowEnd:   rules.NightEnd,
	}

	if period.NightHours.LessThan(rules.NightMinimumHours) {
		return night
	}

	night.Amount = period.NightHours.Mul(hourlyRate).Mul(rules.NightPercent).Round(2)
	night.HealthRiskBonus = rules.NightHealthRiskBonus
	return night
}

func calculateWeekendShift(period *domain.PayPeriodRecord, hourlyRate decimal.Decimal, rules domain.ShiftRules) domain.WeekendShift {
	weekend := domain.WeekendShift{
		Hours:           period.WeekendHours,
		FridayPercent:   rules.FridayPercent,
		SaturdayPercent: rules.SaturdayPercent,
	}
	if !period.WeekendHours.IsPositive() {
		return weekend
	}

	weekend.Amount = period.WeekendHours.Mul(hourlyRate).Mul(rules.WeekendPercent).Round(2)
	weekend.FamilyTimeCompensation = rules.FamilyTimeCompensation
	return weekend
}

func calculateHolidayShift(period *domain.PayPeriodRecord, hourlyRate decimal.Decimal, rules domain.ShiftRules) domain.HolidayShift {
	kind := period.HolidayKind
	if kind == "" {
		kind = domain.HolidayNational
	}

	holiday := domain.HolidayShift{
		Hours:   period.HolidayHours,
		Kind:    kind,
		Percent: rules.HolidayPercents[kind],
	}
	if !period.HolidayHours.IsPositive() {
		return holiday
	}

	holiday.Amount = period.HolidayHours.Mul(hourlyRate).Mul(holiday.Percent).Round(2)
	return holiday
}

func calculateRotatingShift(period *domain.PayPeriodRecord, rules domain.ShiftRules) domain.RotatingShift {
	rotating := domain.RotatingShift{Rotations: period.Rotations}
	if period.Rotations <= 0 {
		return rotating
	}

	rotating.Amount = rules.RotationRate.Mul(decimal.NewFromInt(int64(period.Rotations)))
	rotating.AdaptationBonus = rules.AdaptationBonus
	rotating.DisruptionBonus = rules.DisruptionBonus
	return rotating
}

// calculateOnCall pays standby at the flat on-call rate and callbacks at the
// premium rate with the minimum billable duration applied per period.
func calculateOnCall(period *domain.PayPeriodRecord, hourlyRate decimal.Decimal, rules domain.ShiftRules) domain.OnCallShift {
	onCall := domain.OnCallShift{
		OnCallHours:   period.OnCallHours,
		CallbackHours: period.CallbackHours,
	}

	if period.OnCallHours.IsPositive() {
		onCall.OnCallAmount = period.OnCallHours.Mul(rules.OnCallHourlyRate).Round(2)
	}

	if period.CallbackHours.IsPositive() {
		billed := period.CallbackHours
		if billed.LessThan(rules.CallbackMinimumHours) {
			billed = rules.CallbackMinimumHours
		}
		onCall.BilledHours = billed
		onCall.CallbackAmount = billed.Mul(hourlyRate).Mul(rules.CallbackMultiplier).Round(2)
	}

	return onCall
}
