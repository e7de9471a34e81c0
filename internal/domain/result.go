package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HousingAllowance is the computed housing component with its inputs kept for
// audit.
type HousingAllowance struct {
	Amount               decimal.Decimal `json:"amount"`
	Percentage           decimal.Decimal `json:"percentage"`
	LocationFactor       decimal.Decimal `json:"location_factor"`
	FamilySizeMultiplier decimal.Decimal `json:"family_size_multiplier"`
	MaxAmount            decimal.Decimal `json:"max_amount"`
	Capped               bool            `json:"capped"`
}

// TransportAllowance is the fixed transport component plus parking.
type TransportAllowance struct {
	Amount  decimal.Decimal `json:"amount"`
	Parking decimal.Decimal `json:"parking"`
}

// Total is the transport amount including parking.
func (t TransportAllowance) Total() decimal.Decimal {
	return t.Amount.Add(t.Parking)
}

// EducationAllowances groups the education-related components.
type EducationAllowances struct {
	Employee                decimal.Decimal `json:"employee"`
	PerChild                decimal.Decimal `json:"per_child"`
	ChildrenCovered         int             `json:"children_covered"`
	ProfessionalDevelopment decimal.Decimal `json:"professional_development"`
	LanguageTraining        decimal.Decimal `json:"language_training"`
	Certification           decimal.Decimal `json:"certification"`
}

// Total sums every education component, with per-child paid once per covered
// child.
func (e EducationAllowances) Total() decimal.Decimal {
	children := e.PerChild.Mul(decimal.NewFromInt(int64(e.ChildrenCovered)))
	return e.Employee.Add(children).
		Add(e.ProfessionalDevelopment).
		Add(e.LanguageTraining).
		Add(e.Certification)
}

// FamilyAllowances groups the dependent-driven components.
type FamilyAllowances struct {
	Spouse           decimal.Decimal `json:"spouse"`
	PerChild         decimal.Decimal `json:"per_child"`
	ChildrenCovered  int             `json:"children_covered"`
	DependentParents decimal.Decimal `json:"dependent_parents"`
	FamilyMedical    decimal.Decimal `json:"family_medical"`
}

// Total sums every family component.
func (f FamilyAllowances) Total() decimal.Decimal {
	children := f.PerChild.Mul(decimal.NewFromInt(int64(f.ChildrenCovered)))
	return f.Spouse.Add(children).Add(f.DependentParents).Add(f.FamilyMedical)
}

// FlatAllowances are the unconditional monthly stipends, except
// representation which is gated on position level.
type FlatAllowances struct {
	CostOfLiving   decimal.Decimal `json:"cost_of_living"`
	Medical        decimal.Decimal `json:"medical"`
	Communication  decimal.Decimal `json:"communication"`
	Fuel           decimal.Decimal `json:"fuel"`
	Meal           decimal.Decimal `json:"meal"`
	Uniform        decimal.Decimal `json:"uniform"`
	Tools          decimal.Decimal `json:"tools"`
	Representation decimal.Decimal `json:"representation"`
}

// Total sums the flat stipends.
func (f FlatAllowances) Total() decimal.Decimal {
	return f.CostOfLiving.Add(f.Medical).Add(f.Communication).Add(f.Fuel).
		Add(f.Meal).Add(f.Uniform).Add(f.Tools).Add(f.Representation)
}

// AllowanceBreakdown is the full allowance picture for one period.
type AllowanceBreakdown struct {
	Housing   HousingAllowance    `json:"housing"`
	Transport TransportAllowance  `json:"transport"`
	Education EducationAllowances `json:"education"`
	Family    FamilyAllowances    `json:"family"`
	Flat      FlatAllowances      `json:"flat"`
}

// Total sums every allowance component. This is the figure folded into
// gross pay.
func (a AllowanceBreakdown) Total() decimal.Decimal {
	return a.Housing.Amount.
		Add(a.Transport.Total()).
		Add(a.Education.Total()).
		Add(a.Family.Total()).
		Add(a.Flat.Total())
}

// OvertimeTier is one consumed rung of the overtime ladder.
type OvertimeTier struct {
	Tier       int             `json:"tier"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Hours      decimal.Decimal `json:"hours"`
	Amount     decimal.Decimal `json:"amount"`
	AppliesTo  string          `json:"applies_to"`
}

// OvertimeBreakdown is the priced overtime for one period, including the
// condition-gated weekend/holiday components and the statutory ceiling flags.
type OvertimeBreakdown struct {
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	Tiers         []OvertimeTier  `json:"tiers"`

	WeekendAmount      decimal.Decimal `json:"weekend_amount"`
	WeekendBonus       decimal.Decimal `json:"weekend_bonus"`
	WeekendMinimumRest decimal.Decimal `json:"weekend_minimum_rest_hours"`
	HolidayAmount      decimal.Decimal `json:"holiday_amount"`
	HolidayBonus       decimal.Decimal `json:"holiday_bonus"`
	RamadanAllowance   decimal.Decimal `json:"ramadan_allowance"`
	RamadanIftarBonus  decimal.Decimal `json:"ramadan_iftar_bonus"`

	// Ceiling breaches are compliance signals, never computation aborts.
	ExceedsMonthlyCap bool `json:"exceeds_monthly_cap"`
	ExceedsAnnualCap  bool `json:"exceeds_annual_cap"`

	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NightShift is the night-window premium.
type NightShift struct {
	Hours           decimal.Decimal `json:"hours"`
	Percent         decimal.Decimal `json:"percent"`
	WindowStart     string          `json:"window_start"`
	WindowEnd       string          `json:"window_end"`
	Amount          decimal.Decimal `json:"amount"`
	HealthRiskBonus decimal.Decimal `json:"health_risk_bonus"`
}

// Total is the night premium including the health-risk bonus.
func (n NightShift) Total() decimal.Decimal { return n.Amount.Add(n.HealthRiskBonus) }

// WeekendShift is the rest-day premium.
type WeekendShift struct {
	Hours                  decimal.Decimal `json:"hours"`
	FridayPercent          decimal.Decimal `json:"friday_percent"`
	SaturdayPercent        decimal.Decimal `json:"saturday_percent"`
	Amount                 decimal.Decimal `json:"amount"`
	FamilyTimeCompensation decimal.Decimal `json:"family_time_compensation"`
}

// Total is the weekend premium including the family-time compensation.
func (w WeekendShift) Total() decimal.Decimal { return w.Amount.Add(w.FamilyTimeCompensation) }

// HolidayShift is the holiday premium keyed by holiday type.
type HolidayShift struct {
	Hours   decimal.Decimal `json:"hours"`
	Kind    HolidayType     `json:"kind"`
	Percent decimal.Decimal `json:"percent"`
	Amount  decimal.Decimal `json:"amount"`
}

// RotatingShift is the rotation adaptation premium.
type RotatingShift struct {
	Rotations       int             `json:"rotations"`
	Amount          decimal.Decimal `json:"amount"`
	AdaptationBonus decimal.Decimal `json:"adaptation_bonus"`
	DisruptionBonus decimal.Decimal `json:"disruption_bonus"`
}

// Total is the rotation premium including both bonuses.
func (r RotatingShift) Total() decimal.Decimal {
	return r.Amount.Add(r.AdaptationBonus).Add(r.DisruptionBonus)
}

// OnCallShift is the standby and callback premium.
type OnCallShift struct {
	OnCallHours    decimal.Decimal `json:"on_call_hours"`
	OnCallAmount   decimal.Decimal `json:"on_call_amount"`
	CallbackHours  decimal.Decimal `json:"callback_hours"`
	BilledHours    decimal.Decimal `json:"billed_hours"`
	CallbackAmount decimal.Decimal `json:"callback_amount"`
}

// Total is the full on-call premium.
func (o OnCallShift) Total() decimal.Decimal { return o.OnCallAmount.Add(o.CallbackAmount) }

// ShiftBreakdown groups the five independent shift premiums.
type ShiftBreakdown struct {
	Night    NightShift    `json:"night"`
	Weekend  WeekendShift  `json:"weekend"`
	Holiday  HolidayShift  `json:"holiday"`
	Rotating RotatingShift `json:"rotating"`
	OnCall   OnCallShift   `json:"on_call"`
}

// Total sums the five premiums. They are additive and independent; none
// interacts with the overtime tiers.
func (s ShiftBreakdown) Total() decimal.Decimal {
	return s.Night.Total().
		Add(s.Weekend.Total()).
		Add(s.Holiday.Amount).
		Add(s.Rotating.Total()).
		Add(s.OnCall.Total())
}

// RamadanBreakdown is the Ramadan-period adjustment. All fields are zero
// outside Ramadan periods. Its allowances are reported alongside the payslip,
// not folded into gross pay.
type RamadanBreakdown struct {
	Applied             bool            `json:"applied"`
	HoursReduction      decimal.Decimal `json:"hours_reduction"`
	MaxDailyHours       decimal.Decimal `json:"max_daily_hours"`
	OvertimeAfter       decimal.Decimal `json:"overtime_after"`
	ProductivityFactor  decimal.Decimal `json:"productivity_factor"`
	IftarAllowance      decimal.Decimal `json:"iftar_allowance"`
	SuhoorAllowance     decimal.Decimal `json:"suhoor_allowance"`
	TransportationBonus decimal.Decimal `json:"transportation_bonus"`
	ZakatDeduction      decimal.Decimal `json:"zakat_deduction"`
	ZakatAmount         decimal.Decimal `json:"zakat_amount"`
	SalaryAdvance       decimal.Decimal `json:"salary_advance"`
}

// HajjSpouseEntitlement extends the leave to an accompanying spouse when the
// company policy allows combined leave.
type HajjSpouseEntitlement struct {
	Eligible          bool            `json:"eligible"`
	CombinedLeave     bool            `json:"combined_leave"`
	SpouseAllowance   decimal.Decimal `json:"spouse_allowance"`
	FamilyTravelBonus decimal.Decimal `json:"family_travel_bonus"`
}

// HajjBreakdown is the pilgrimage-leave entitlement. It is a boolean-gated
// lookup: ineligible employees get zeros, never a proration.
type HajjBreakdown struct {
	Eligible           bool                   `json:"eligible"`
	YearsOfService     int                    `json:"years_of_service"`
	YearsSinceLastHajj int                    `json:"years_since_last_hajj"`
	LeaveDays          int                    `json:"leave_days"`
	PaidLeaveDays      int                    `json:"paid_leave_days"`
	Bonus              decimal.Decimal        `json:"bonus"`
	TravelAllowance    decimal.Decimal        `json:"travel_allowance"`
	ReturnBonus        decimal.Decimal        `json:"return_bonus"`
	Spouse             *HajjSpouseEntitlement `json:"spouse,omitempty"`
}

// EOSBTier is one computed rung of the severance ladder.
type EOSBTier struct {
	FromYears   int             `json:"from_years"`
	ToYears     int             `json:"to_years"` // 0 = open-ended
	DaysPerYear int             `json:"days_per_year"`
	Years       decimal.Decimal `json:"years"`
	Amount      decimal.Decimal `json:"amount"`
}

// EOSBBreakdown is the end-of-service settlement. Outside termination runs it
// is an accrual projection (Projection = true) and is never folded into the
// period's gross pay.
type EOSBBreakdown struct {
	Projection     bool            `json:"projection"`
	ServiceYears   int             `json:"service_years"`
	ServiceMonths  int             `json:"service_months"`
	DailyWage      decimal.Decimal `json:"daily_wage"`
	Tiers          []EOSBTier      `json:"tiers"`
	SeveranceTotal decimal.Decimal `json:"severance_total"`

	UnusedLeaveDays decimal.Decimal `json:"unused_leave_days"`
	UnusedLeavePay  decimal.Decimal `json:"unused_leave_pay"`

	RequiredNoticeDays int             `json:"required_notice_days"`
	NoticeDaysServed   int             `json:"notice_days_served"`
	NoticePay          decimal.Decimal `json:"notice_pay"`

	LoyaltyBonus     decimal.Decimal `json:"loyalty_bonus"`
	LongServiceAward decimal.Decimal `json:"long_service_award"`

	// Wage-basis metadata for downstream settlement review.
	AllowancesIncluded []string `json:"allowances_included"`
	AllowancesExcluded []string `json:"allowances_excluded"`

	Total decimal.Decimal `json:"total"`
}

// VestingSchedule records how much of a retention bonus has vested. Clawback
// conditions are metadata for downstream HR workflows, not enforced here.
type VestingSchedule struct {
	TotalAmount        decimal.Decimal `json:"total_amount"`
	VestingMonths      int             `json:"vesting_months"`
	VestedAmount       decimal.Decimal `json:"vested_amount"`
	UnvestedAmount     decimal.Decimal `json:"unvested_amount"`
	ClawbackConditions []string        `json:"clawback_conditions"`
}

// RetentionBonus is a tenure-milestone bonus with its vesting metadata.
type RetentionBonus struct {
	TenureMilestone int             `json:"tenure_milestone"`
	Amount          decimal.Decimal `json:"amount"`
	Vesting         VestingSchedule `json:"vesting"`
}

// BonusBreakdown groups every performance-linked payment for the period.
type BonusBreakdown struct {
	Rating           PerformanceRating  `json:"rating"`
	IndividualAmount decimal.Decimal    `json:"individual_amount"`
	LeadershipBonus  decimal.Decimal    `json:"leadership_bonus"`
	TeamAmount       decimal.Decimal    `json:"team_amount"`
	CompanyAmount    decimal.Decimal    `json:"company_amount"`
	KPIBonuses       []KPILineItem      `json:"kpi_bonuses"`
	Recognition      []RecognitionAward `json:"recognition"`
	Retention        []RetentionBonus   `json:"retention"`
}

// Total sums every bonus component, KPI and recognition line items included.
func (b BonusBreakdown) Total() decimal.Decimal {
	total := b.IndividualAmount.Add(b.LeadershipBonus).Add(b.TeamAmount).Add(b.CompanyAmount)
	for _, k := range b.KPIBonuses {
		total = total.Add(k.BonusAmount)
	}
	for _, r := range b.Recognition {
		total = total.Add(r.Amount)
	}
	for _, r := range b.Retention {
		total = total.Add(r.Amount)
	}
	return total
}

// DangerPayBreakdown is the hazardous-duty premium. Insurance coverage is a
// reported employer-side figure, not pay.
type DangerPayBreakdown struct {
	Hazardous         bool            `json:"hazardous"`
	RiskLevel         RiskLevel       `json:"risk_level"`
	HazardTypes       []string        `json:"hazard_types"`
	RiskMultiplier    decimal.Decimal `json:"risk_multiplier"`
	BaseAmount        decimal.Decimal `json:"base_amount"`
	TrainingBonus     decimal.Decimal `json:"training_bonus"`
	InsuranceCoverage decimal.Decimal `json:"insurance_coverage"`
	Total             decimal.Decimal `json:"total"`
}

// DeductionBreakdown itemizes the statutory and personal deductions.
type DeductionBreakdown struct {
	GOSIRate decimal.Decimal `json:"gosi_rate"`
	GOSI     decimal.Decimal `json:"gosi"`
	Loans    decimal.Decimal `json:"loans"`
	Other    decimal.Decimal `json:"other"`
}

// Total sums the deductions.
func (d DeductionBreakdown) Total() decimal.Decimal {
	return d.GOSI.Add(d.Loans).Add(d.Other)
}

// PayrollResult is the complete pay package for one (employee, period) pair.
// It is a value: created fresh on every calculation, immutable once returned,
// and byte-identical across runs with identical inputs.
type PayrollResult struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id"`
	EmployeeID string `json:"employee_id"`
	PeriodID   string `json:"period_id"`

	BaseSalary decimal.Decimal `json:"base_salary"`

	Allowances AllowanceBreakdown `json:"allowances"`
	Overtime   OvertimeBreakdown  `json:"overtime"`
	Shifts     ShiftBreakdown     `json:"shifts"`
	Ramadan    RamadanBreakdown   `json:"ramadan"`
	Hajj       HajjBreakdown      `json:"hajj"`
	EOSB       EOSBBreakdown      `json:"eosb"`
	Bonuses    BonusBreakdown     `json:"bonuses"`
	DangerPay  DangerPayBreakdown `json:"danger_pay"`

	TotalGross      decimal.Decimal    `json:"total_gross"`
	Deductions      DeductionBreakdown `json:"deductions"`
	TotalDeductions decimal.Decimal    `json:"total_deductions"`
	NetPay          decimal.Decimal    `json:"net_pay"`

	ComplianceScore int       `json:"compliance_score"`
	CalculatedAt    time.Time `json:"calculated_at"`
}

// GrossComponents returns the documented gross-pay sum: base salary plus
// allowances, overtime, shifts, bonuses and danger pay. Ramadan allowances
// and the Hajj/EOSB entitlements are reported, not folded into gross.
func (r *PayrollResult) GrossComponents() decimal.Decimal {
	return r.BaseSalary.
		Add(r.Allowances.Total()).
		Add(r.Overtime.TotalAmount).
		Add(r.Shifts.Total()).
		Add(r.Bonuses.Total()).
		Add(r.DangerPay.Total)
}
