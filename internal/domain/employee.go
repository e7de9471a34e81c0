package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaritalStatus is the employee's marital status as recorded by HR.
type MaritalStatus string

const (
	Single  MaritalStatus = "single"
	Married MaritalStatus = "married"
	Widowed MaritalStatus = "widowed"
)

// PerformanceRating is the closed set of annual review outcomes. Bonus
// multipliers are keyed off this type; an unknown rating is a construction
// error, not a silent zero.
type PerformanceRating string

const (
	RatingExceptional    PerformanceRating = "exceptional"
	RatingExceeds        PerformanceRating = "exceeds"
	RatingMeets          PerformanceRating = "meets"
	RatingBelow          PerformanceRating = "below"
	RatingUnsatisfactory PerformanceRating = "unsatisfactory"
)

// Valid reports whether the rating is one of the five known values.
func (r PerformanceRating) Valid() bool {
	switch r {
	case RatingExceptional, RatingExceeds, RatingMeets, RatingBelow, RatingUnsatisfactory:
		return true
	}
	return false
}

// RiskLevel classifies hazardous-duty assignments.
type RiskLevel string

const (
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskExtreme RiskLevel = "extreme"
)

// Valid reports whether the risk level is one of the four known values.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskExtreme:
		return true
	}
	return false
}

// PositionLevel drives position-gated allowances (representation allowance,
// leadership bonus).
type PositionLevel string

const (
	PositionStaff      PositionLevel = "staff"
	PositionSupervisor PositionLevel = "supervisor"
	PositionManager    PositionLevel = "manager"
	PositionExecutive  PositionLevel = "executive"
)

// IsManagerial reports whether the level carries managerial entitlements.
func (p PositionLevel) IsManagerial() bool {
	return p == PositionManager || p == PositionExecutive
}

// HolidayType selects the premium percentage for holiday shift work and the
// multiplier for holiday overtime.
type HolidayType string

const (
	HolidayNational  HolidayType = "national"
	HolidayReligious HolidayType = "religious"
	HolidayCompany   HolidayType = "company"
)

// EmployeeRecord is the HR master record for one employee, already validated
// and resolved by the data source. It is read-only for the duration of a
// calculation.
type EmployeeRecord struct {
	ID              string          `yaml:"id" json:"id"`
	CompanyID       string          `yaml:"company_id" json:"company_id"`
	Name            string          `yaml:"name,omitempty" json:"name,omitempty"`
	BasicSalary     decimal.Decimal `yaml:"basic_salary" json:"basic_salary"`
	HireDate        time.Time       `yaml:"hire_date" json:"hire_date"`
	IsSaudiNational bool            `yaml:"is_saudi_national" json:"is_saudi_national"`
	City            string          `yaml:"city,omitempty" json:"city,omitempty"`

	MaritalStatus    MaritalStatus `yaml:"marital_status,omitempty" json:"marital_status,omitempty"`
	FamilySize       int           `yaml:"family_size,omitempty" json:"family_size,omitempty"`
	ChildrenCount    int           `yaml:"children_count,omitempty" json:"children_count,omitempty"`
	DependentParents int           `yaml:"dependent_parents,omitempty" json:"dependent_parents,omitempty"`
	CommuteKM        int           `yaml:"commute_km,omitempty" json:"commute_km,omitempty"`

	PositionLevel     PositionLevel     `yaml:"position_level,omitempty" json:"position_level,omitempty"`
	PerformanceRating PerformanceRating `yaml:"performance_rating,omitempty" json:"performance_rating,omitempty"`

	HazardousWork bool      `yaml:"hazardous_work,omitempty" json:"hazardous_work,omitempty"`
	RiskLevel     RiskLevel `yaml:"risk_level,omitempty" json:"risk_level,omitempty"`
	HazardTypes   []string  `yaml:"hazard_types,omitempty" json:"hazard_types,omitempty"`

	YearsSinceLastHajj int `yaml:"years_since_last_hajj,omitempty" json:"years_since_last_hajj,omitempty"`

	UnusedLeaveDays  int             `yaml:"unused_leave_days,omitempty" json:"unused_leave_days,omitempty"`
	NoticeDaysServed int             `yaml:"notice_days_served,omitempty" json:"notice_days_served,omitempty"`
	LoanDeductions   decimal.Decimal `yaml:"loan_deductions,omitempty" json:"loan_deductions,omitempty"`
	OtherDeductions  decimal.Decimal `yaml:"other_deductions,omitempty" json:"other_deductions,omitempty"`
}

const (
	daysPerYear  = 365.25
	daysPerMonth = 30.44
)

// YearsOfService returns whole years of service at the given date using the
// 365.25 day-per-year approximation. The approximation is load-bearing: EOSB
// tier boundaries are defined against it.
func (e *EmployeeRecord) YearsOfService(asOf time.Time) int {
	if asOf.Before(e.HireDate) {
		return 0
	}
	days := asOf.Sub(e.HireDate).Hours() / 24
	return int(days / daysPerYear)
}

// MonthsOfService returns whole months of service at the given date using the
// 30.44 day-per-month approximation.
func (e *EmployeeRecord) MonthsOfService(asOf time.Time) int {
	if asOf.Before(e.HireDate) {
		return 0
	}
	days := asOf.Sub(e.HireDate).Hours() / 24
	return int(days / daysPerMonth)
}

// HourlyRate derives the hourly wage from the monthly basic salary using the
// statutory 40-hour week and the 4.33 weeks-per-month approximation.
func (e *EmployeeRecord) HourlyRate(weeklyHours decimal.Decimal) decimal.Decimal {
	divisor := weeklyHours.Mul(decimal.NewFromFloat(4.33))
	if divisor.IsZero() {
		return decimal.Zero
	}
	return e.BasicSalary.Div(divisor)
}

// DailyWage is the statutory daily wage (basic salary / 30) used by EOSB and
// leave cash-out formulas.
func (e *EmployeeRecord) DailyWage() decimal.Decimal {
	return e.BasicSalary.Div(decimal.NewFromInt(30))
}

// KPILineItem is a pass-through KPI bonus awarded by the performance system.
// The engine sums and reports these; it never invents them.
type KPILineItem struct {
	Name               string          `yaml:"name" json:"name"`
	TargetValue        decimal.Decimal `yaml:"target_value,omitempty" json:"target_value,omitempty"`
	ActualValue        decimal.Decimal `yaml:"actual_value,omitempty" json:"actual_value,omitempty"`
	AchievementPercent decimal.Decimal `yaml:"achievement_percent,omitempty" json:"achievement_percent,omitempty"`
	Weight             decimal.Decimal `yaml:"weight,omitempty" json:"weight,omitempty"`
	BonusAmount        decimal.Decimal `yaml:"bonus_amount" json:"bonus_amount"`
}

// RecognitionAward is a pass-through award line item from the period record.
type RecognitionAward struct {
	AwardType string          `yaml:"award_type" json:"award_type"`
	Amount    decimal.Decimal `yaml:"amount" json:"amount"`
	Frequency string          `yaml:"frequency,omitempty" json:"frequency,omitempty"`
}

// PayPeriodRecord describes one pay cycle for one employee: the worked-hours
// breakdown plus period-scoped line items. Hour categories partition the
// period: night/weekend/holiday/on-call hours earn shift differentials only
// and never feed the overtime tiers, which consume total - regular.
type PayPeriodRecord struct {
	PeriodID string `yaml:"period_id" json:"period_id"`

	RegularHours decimal.Decimal `yaml:"regular_hours" json:"regular_hours"`
	TotalHours   decimal.Decimal `yaml:"total_hours" json:"total_hours"`

	NightHours    decimal.Decimal `yaml:"night_hours,omitempty" json:"night_hours,omitempty"`
	WeekendHours  decimal.Decimal `yaml:"weekend_hours,omitempty" json:"weekend_hours,omitempty"`
	HolidayHours  decimal.Decimal `yaml:"holiday_hours,omitempty" json:"holiday_hours,omitempty"`
	HolidayKind   HolidayType     `yaml:"holiday_kind,omitempty" json:"holiday_kind,omitempty"`
	OnCallHours   decimal.Decimal `yaml:"on_call_hours,omitempty" json:"on_call_hours,omitempty"`
	CallbackHours decimal.Decimal `yaml:"callback_hours,omitempty" json:"callback_hours,omitempty"`
	Rotations     int             `yaml:"rotations,omitempty" json:"rotations,omitempty"`

	FridayOvertimeHours   decimal.Decimal `yaml:"friday_overtime_hours,omitempty" json:"friday_overtime_hours,omitempty"`
	SaturdayOvertimeHours decimal.Decimal `yaml:"saturday_overtime_hours,omitempty" json:"saturday_overtime_hours,omitempty"`
	HolidayOvertimeHours  decimal.Decimal `yaml:"holiday_overtime_hours,omitempty" json:"holiday_overtime_hours,omitempty"`
	ConsecutiveWeekends   bool            `yaml:"consecutive_weekends,omitempty" json:"consecutive_weekends,omitempty"`

	// Running annual overtime total before this period, for the 180 h/year
	// ceiling flag.
	AnnualOvertimeHours decimal.Decimal `yaml:"annual_overtime_hours,omitempty" json:"annual_overtime_hours,omitempty"`

	IsRamadanPeriod bool            `yaml:"is_ramadan_period,omitempty" json:"is_ramadan_period,omitempty"`
	ZakatDeduction  decimal.Decimal `yaml:"zakat_deduction,omitempty" json:"zakat_deduction,omitempty"`
	ZakatAmount     decimal.Decimal `yaml:"zakat_amount,omitempty" json:"zakat_amount,omitempty"`
	RamadanAdvance  decimal.Decimal `yaml:"ramadan_advance,omitempty" json:"ramadan_advance,omitempty"`

	// TerminationRun marks the period as a final-settlement run; the EOSB
	// breakdown is then a payable entitlement rather than an accrual
	// projection.
	TerminationRun bool `yaml:"termination_run,omitempty" json:"termination_run,omitempty"`

	TeamRating         decimal.Decimal    `yaml:"team_rating,omitempty" json:"team_rating,omitempty"`
	RevenueAchievement decimal.Decimal    `yaml:"revenue_achievement,omitempty" json:"revenue_achievement,omitempty"`
	KPIBonuses         []KPILineItem      `yaml:"kpi_bonuses,omitempty" json:"kpi_bonuses,omitempty"`
	RecognitionAwards  []RecognitionAward `yaml:"recognition_awards,omitempty" json:"recognition_awards,omitempty"`
}

// OvertimeHours is the tier-eligible overtime for the period.
func (p *PayPeriodRecord) OvertimeHours() decimal.Decimal {
	ot := p.TotalHours.Sub(p.RegularHours)
	if ot.IsNegative() {
		return decimal.Zero
	}
	return ot
}
