package domain

import (
	"github.com/shopspring/decimal"
)

// PolicyConfig is the fully resolved rule set one calculation runs against:
// the Saudi statutory defaults with any company overrides already merged in.
// Every monetary constant and multiplier the engine uses lives here so that
// regulatory updates touch data, not control flow.
type PolicyConfig struct {
	Statutory  StatutoryRules `yaml:"statutory" json:"statutory"`
	Overtime   OvertimeRules  `yaml:"overtime" json:"overtime"`
	Allowances AllowanceRules `yaml:"allowances" json:"allowances"`
	Shifts     ShiftRules     `yaml:"shifts" json:"shifts"`
	Ramadan    RamadanRules   `yaml:"ramadan" json:"ramadan"`
	Hajj       HajjRules      `yaml:"hajj" json:"hajj"`
	EOSB       EOSBRules      `yaml:"eosb" json:"eosb"`
	Bonuses    BonusRules     `yaml:"bonuses" json:"bonuses"`
	Danger     DangerRules    `yaml:"danger" json:"danger"`
}

// StatutoryRules are the labor-law floors and ceilings shared across
// calculators and the validator.
type StatutoryRules struct {
	MinimumWage         decimal.Decimal `yaml:"minimum_wage" json:"minimum_wage"`
	GOSIEmployeeRate    decimal.Decimal `yaml:"gosi_employee_rate" json:"gosi_employee_rate"`
	WeeklyHours         decimal.Decimal `yaml:"weekly_hours" json:"weekly_hours"`
	RegularDailyHours   decimal.Decimal `yaml:"regular_daily_hours" json:"regular_daily_hours"`
	MonthlyOvertimeCap  decimal.Decimal `yaml:"monthly_overtime_cap" json:"monthly_overtime_cap"`
	AnnualOvertimeCap   decimal.Decimal `yaml:"annual_overtime_cap" json:"annual_overtime_cap"`
	HousingShareOfGross decimal.Decimal `yaml:"housing_share_of_gross" json:"housing_share_of_gross"`
	RequiredNoticeDays  int             `yaml:"required_notice_days" json:"required_notice_days"`
	MinimumWagePenalty  int             `yaml:"minimum_wage_penalty" json:"minimum_wage_penalty"`
	OvertimeCapPenalty  int             `yaml:"overtime_cap_penalty" json:"overtime_cap_penalty"`
	HousingSharePenalty int             `yaml:"housing_share_penalty" json:"housing_share_penalty"`
}

// OvertimeTierRule is one rung of the weekday overtime ladder. Hours of zero
// marks the open-ended final tier.
type OvertimeTierRule struct {
	Hours      decimal.Decimal `yaml:"hours" json:"hours"`
	Multiplier decimal.Decimal `yaml:"multiplier" json:"multiplier"`
}

// OvertimeRules holds the tier ladder plus the condition-gated rule sets for
// Ramadan, weekend and holiday overtime.
type OvertimeRules struct {
	Tiers   []OvertimeTierRule  `yaml:"tiers" json:"tiers"`
	Ramadan RamadanOvertimeRule `yaml:"ramadan" json:"ramadan"`
	Weekend WeekendOvertimeRule `yaml:"weekend" json:"weekend"`
	Holiday HolidayOvertimeRule `yaml:"holiday" json:"holiday"`
}

// RamadanOvertimeRule replaces the weekday ladder during Ramadan periods:
// overtime starts after the reduced 6-hour day and pays a flat multiplier.
type RamadanOvertimeRule struct {
	MaxDailyHours    decimal.Decimal `yaml:"max_daily_hours" json:"max_daily_hours"`
	OvertimeAfter    decimal.Decimal `yaml:"overtime_after" json:"overtime_after"`
	Multiplier       decimal.Decimal `yaml:"multiplier" json:"multiplier"`
	SpecialAllowance decimal.Decimal `yaml:"special_allowance" json:"special_allowance"`
	IftarBonus       decimal.Decimal `yaml:"iftar_bonus" json:"iftar_bonus"`
}

// WeekendOvertimeRule prices overtime worked on rest days.
type WeekendOvertimeRule struct {
	FridayMultiplier   decimal.Decimal `yaml:"friday_multiplier" json:"friday_multiplier"`
	SaturdayMultiplier decimal.Decimal `yaml:"saturday_multiplier" json:"saturday_multiplier"`
	MinimumRestHours   decimal.Decimal `yaml:"minimum_rest_hours" json:"minimum_rest_hours"`
	ConsecutiveBonus   decimal.Decimal `yaml:"consecutive_bonus" json:"consecutive_bonus"`
}

// HolidayOvertimeRule prices overtime worked on public or company holidays.
type HolidayOvertimeRule struct {
	Multipliers    map[HolidayType]decimal.Decimal `yaml:"multipliers" json:"multipliers"`
	ReportingBonus decimal.Decimal                 `yaml:"reporting_bonus" json:"reporting_bonus"`
}

// AllowanceRules are the monthly allowance constants.
type AllowanceRules struct {
	HousingPercent        decimal.Decimal `yaml:"housing_percent" json:"housing_percent"`
	HousingMax            decimal.Decimal `yaml:"housing_max" json:"housing_max"`
	CapitalCities         []string        `yaml:"capital_cities" json:"capital_cities"`
	CapitalLocationFactor decimal.Decimal `yaml:"capital_location_factor" json:"capital_location_factor"`
	OtherLocationFactor   decimal.Decimal `yaml:"other_location_factor" json:"other_location_factor"`
	FamilySizeStep        decimal.Decimal `yaml:"family_size_step" json:"family_size_step"`
	FamilySizeCap         decimal.Decimal `yaml:"family_size_cap" json:"family_size_cap"`

	Transport decimal.Decimal `yaml:"transport" json:"transport"`
	Parking   decimal.Decimal `yaml:"parking" json:"parking"`

	EmployeeEducation       decimal.Decimal `yaml:"employee_education" json:"employee_education"`
	ChildEducation          decimal.Decimal `yaml:"child_education" json:"child_education"`
	ProfessionalDevelopment decimal.Decimal `yaml:"professional_development" json:"professional_development"`
	LanguageTraining        decimal.Decimal `yaml:"language_training" json:"language_training"`
	Certification           decimal.Decimal `yaml:"certification" json:"certification"`
	MaxAllowanceChildren    int             `yaml:"max_allowance_children" json:"max_allowance_children"`

	Spouse           decimal.Decimal `yaml:"spouse" json:"spouse"`
	ChildFamily      decimal.Decimal `yaml:"child_family" json:"child_family"`
	DependentParents decimal.Decimal `yaml:"dependent_parents" json:"dependent_parents"`
	MedicalBase      decimal.Decimal `yaml:"medical_base" json:"medical_base"`
	MedicalPerMember decimal.Decimal `yaml:"medical_per_member" json:"medical_per_member"`

	CostOfLiving   decimal.Decimal `yaml:"cost_of_living" json:"cost_of_living"`
	Medical        decimal.Decimal `yaml:"medical" json:"medical"`
	Communication  decimal.Decimal `yaml:"communication" json:"communication"`
	Fuel           decimal.Decimal `yaml:"fuel" json:"fuel"`
	Meal           decimal.Decimal `yaml:"meal" json:"meal"`
	Uniform        decimal.Decimal `yaml:"uniform" json:"uniform"`
	Tools          decimal.Decimal `yaml:"tools" json:"tools"`
	Representation decimal.Decimal `yaml:"representation" json:"representation"`
}

// ShiftRules are the shift-differential constants.
type ShiftRules struct {
	NightStart           string          `yaml:"night_start" json:"night_start"`
	NightEnd             string          `yaml:"night_end" json:"night_end"`
	NightPercent         decimal.Decimal `yaml:"night_percent" json:"night_percent"`
	NightMinimumHours    decimal.Decimal `yaml:"night_minimum_hours" json:"night_minimum_hours"`
	NightHealthRiskBonus decimal.Decimal `yaml:"night_health_risk_bonus" json:"night_health_risk_bonus"`

	WeekendPercent         decimal.Decimal `yaml:"weekend_percent" json:"weekend_percent"`
	FridayPercent          decimal.Decimal `yaml:"friday_percent" json:"friday_percent"`
	SaturdayPercent        decimal.Decimal `yaml:"saturday_percent" json:"saturday_percent"`
	FamilyTimeCompensation decimal.Decimal `yaml:"family_time_compensation" json:"family_time_compensation"`

	HolidayPercents map[HolidayType]decimal.Decimal `yaml:"holiday_percents" json:"holiday_percents"`

	RotationRate    decimal.Decimal `yaml:"rotation_rate" json:"rotation_rate"`
	AdaptationBonus decimal.Decimal `yaml:"adaptation_bonus" json:"adaptation_bonus"`
	DisruptionBonus decimal.Decimal `yaml:"disruption_bonus" json:"disruption_bonus"`

	OnCallHourlyRate     decimal.Decimal `yaml:"on_call_hourly_rate" json:"on_call_hourly_rate"`
	CallbackMultiplier   decimal.Decimal `yaml:"callback_multiplier" json:"callback_multiplier"`
	CallbackMinimumHours decimal.Decimal `yaml:"callback_minimum_hours" json:"callback_minimum_hours"`
}

// RamadanRules are the Ramadan-period working adjustments.
type RamadanRules struct {
	HoursReduction      decimal.Decimal `yaml:"hours_reduction" json:"hours_reduction"`
	ProductivityFactor  decimal.Decimal `yaml:"productivity_factor" json:"productivity_factor"`
	IftarAllowance      decimal.Decimal `yaml:"iftar_allowance" json:"iftar_allowance"`
	SuhoorAllowance     decimal.Decimal `yaml:"suhoor_allowance" json:"suhoor_allowance"`
	TransportationBonus decimal.Decimal `yaml:"transportation_bonus" json:"transportation_bonus"`
}

// HajjRules gate and price the pilgrimage leave entitlement.
type HajjRules struct {
	MinServiceYears   int             `yaml:"min_service_years" json:"min_service_years"`
	MinYearsSinceHajj int             `yaml:"min_years_since_hajj" json:"min_years_since_hajj"`
	LeaveDays         int             `yaml:"leave_days" json:"leave_days"`
	Bonus             decimal.Decimal `yaml:"bonus" json:"bonus"`
	TravelAllowance   decimal.Decimal `yaml:"travel_allowance" json:"travel_allowance"`
	ReturnBonus       decimal.Decimal `yaml:"return_bonus" json:"return_bonus"`
	SpouseExtension   bool            `yaml:"spouse_extension" json:"spouse_extension"`
	SpouseAllowance   decimal.Decimal `yaml:"spouse_allowance" json:"spouse_allowance"`
	FamilyTravelBonus decimal.Decimal `yaml:"family_travel_bonus" json:"family_travel_bonus"`
}

// EOSBTierRule is one rung of the severance ladder: days of wage per year of
// service for a bounded range of service years. MaxYears of zero marks the
// open-ended final tier.
type EOSBTierRule struct {
	MaxYears    int `yaml:"max_years" json:"max_years"`
	DaysPerYear int `yaml:"days_per_year" json:"days_per_year"`
}

// EOSBRules hold the severance ladder and the tenure-gated extras.
type EOSBRules struct {
	Tiers              []EOSBTierRule  `yaml:"tiers" json:"tiers"`
	LoyaltyBonusYears  int             `yaml:"loyalty_bonus_years" json:"loyalty_bonus_years"`
	LoyaltyBonus       decimal.Decimal `yaml:"loyalty_bonus" json:"loyalty_bonus"`
	LongServiceYears   int             `yaml:"long_service_years" json:"long_service_years"`
	LongServiceAward   decimal.Decimal `yaml:"long_service_award" json:"long_service_award"`
	AllowancesIncluded []string        `yaml:"allowances_included" json:"allowances_included"`
	AllowancesExcluded []string        `yaml:"allowances_excluded" json:"allowances_excluded"`
}

// BonusRules hold the performance bonus multiplier tables.
type BonusRules struct {
	RatingMultipliers      map[PerformanceRating]decimal.Decimal `yaml:"rating_multipliers" json:"rating_multipliers"`
	LeadershipBonus        decimal.Decimal                       `yaml:"leadership_bonus" json:"leadership_bonus"`
	TeamRatingRate         decimal.Decimal                       `yaml:"team_rating_rate" json:"team_rating_rate"`
	ProfitSharingPercent   decimal.Decimal                       `yaml:"profit_sharing_percent" json:"profit_sharing_percent"`
	RetentionMilestone     int                                   `yaml:"retention_milestone" json:"retention_milestone"`
	RetentionBonus         decimal.Decimal                       `yaml:"retention_bonus" json:"retention_bonus"`
	RetentionVestingMonths int                                   `yaml:"retention_vesting_months" json:"retention_vesting_months"`
}

// DangerRules hold the hazardous-duty multiplier table and fixed extras.
type DangerRules struct {
	RiskMultipliers   map[RiskLevel]decimal.Decimal `yaml:"risk_multipliers" json:"risk_multipliers"`
	TrainingBonus     decimal.Decimal               `yaml:"training_bonus" json:"training_bonus"`
	InsuranceCoverage decimal.Decimal               `yaml:"insurance_coverage" json:"insurance_coverage"`
}

// DefaultPolicy returns the statutory Saudi labor-law rule set the engine
// falls back to when a company supplies no overrides.
func DefaultPolicy() PolicyConfig {
	return PolicyConfig{
		Statutory: StatutoryRules{
			MinimumWage:         decimal.NewFromInt(4000),
			GOSIEmployeeRate:    decimal.NewFromFloat(0.10),
			WeeklyHours:         decimal.NewFromInt(40),
			RegularDailyHours:   decimal.NewFromInt(8),
			MonthlyOvertimeCap:  decimal.NewFromInt(40),
			AnnualOvertimeCap:   decimal.NewFromInt(180),
			HousingShareOfGross: decimal.NewFromFloat(0.15),
			RequiredNoticeDays:  30,
			MinimumWagePenalty:  20,
			OvertimeCapPenalty:  15,
			HousingSharePenalty: 10,
		},
		Overtime: OvertimeRules{
			Tiers: []OvertimeTierRule{
				{Hours: decimal.NewFromInt(2), Multiplier: decimal.NewFromFloat(1.5)},
				{Hours: decimal.NewFromInt(2), Multiplier: decimal.NewFromFloat(2.0)},
				{Hours: decimal.Zero, Multiplier: decimal.NewFromFloat(2.5)},
			},
			Ramadan: RamadanOvertimeRule{
				MaxDailyHours:    decimal.NewFromInt(6),
				OvertimeAfter:    decimal.NewFromInt(6),
				Multiplier:       decimal.NewFromFloat(2.0),
				SpecialAllowance: decimal.NewFromInt(200),
				IftarBonus:       decimal.NewFromInt(50),
			},
			Weekend: WeekendOvertimeRule{
				FridayMultiplier:   decimal.NewFromFloat(2.0),
				SaturdayMultiplier: decimal.NewFromFloat(1.5),
				MinimumRestHours:   decimal.NewFromInt(24),
				ConsecutiveBonus:   decimal.NewFromInt(100),
			},
			Holiday: HolidayOvertimeRule{
				Multipliers: map[HolidayType]decimal.Decimal{
					HolidayNational:  decimal.NewFromFloat(2.5),
					HolidayReligious: decimal.NewFromFloat(2.5),
					HolidayCompany:   decimal.NewFromFloat(2.0),
				},
				ReportingBonus: decimal.NewFromInt(150),
			},
		},
		Allowances: AllowanceRules{
			HousingPercent:        decimal.NewFromFloat(0.25),
			HousingMax:            decimal.NewFromInt(8000),
			CapitalCities:         []string{"riyadh", "jeddah"},
			CapitalLocationFactor: decimal.NewFromInt(1),
			OtherLocationFactor:   decimal.NewFromFloat(0.8),
			FamilySizeStep:        decimal.NewFromFloat(0.1),
			FamilySizeCap:         decimal.NewFromFloat(1.5),

			Transport: decimal.NewFromInt(800),
			Parking:   decimal.NewFromInt(200),

			EmployeeEducation:       decimal.NewFromInt(2000),
			ChildEducation:          decimal.NewFromInt(500),
			ProfessionalDevelopment: decimal.NewFromInt(1500),
			LanguageTraining:        decimal.NewFromInt(500),
			Certification:           decimal.NewFromInt(1000),
			MaxAllowanceChildren:    4,

			Spouse:           decimal.NewFromInt(400),
			ChildFamily:      decimal.NewFromInt(150),
			DependentParents: decimal.NewFromInt(300),
			MedicalBase:      decimal.NewFromInt(500),
			MedicalPerMember: decimal.NewFromInt(100),

			CostOfLiving:   decimal.NewFromInt(400),
			Medical:        decimal.NewFromInt(600),
			Communication:  decimal.NewFromInt(200),
			Fuel:           decimal.NewFromInt(300),
			Meal:           decimal.NewFromInt(250),
			Uniform:        decimal.NewFromInt(100),
			Tools:          decimal.NewFromInt(150),
			Representation: decimal.NewFromInt(500),
		},
		Shifts: ShiftRules{
			NightStart:           "22:00",
			NightEnd:             "06:00",
			NightPercent:         decimal.NewFromFloat(0.20),
			NightMinimumHours:    decimal.NewFromInt(4),
			NightHealthRiskBonus: decimal.NewFromInt(100),

			WeekendPercent:         decimal.NewFromFloat(0.20),
			FridayPercent:          decimal.NewFromFloat(0.25),
			SaturdayPercent:        decimal.NewFromFloat(0.15),
			FamilyTimeCompensation: decimal.NewFromInt(150),

			HolidayPercents: map[HolidayType]decimal.Decimal{
				HolidayNational:  decimal.NewFromFloat(0.50),
				HolidayReligious: decimal.NewFromFloat(0.50),
				HolidayCompany:   decimal.NewFromFloat(0.40),
			},

			RotationRate:    decimal.NewFromInt(50),
			AdaptationBonus: decimal.NewFromInt(200),
			DisruptionBonus: decimal.NewFromInt(100),

			OnCallHourlyRate:     decimal.NewFromInt(25),
			CallbackMultiplier:   decimal.NewFromFloat(1.5),
			CallbackMinimumHours: decimal.NewFromInt(2),
		},
		Ramadan: RamadanRules{
			HoursReduction:      decimal.NewFromInt(2),
			ProductivityFactor:  decimal.NewFromFloat(0.95),
			IftarAllowance:      decimal.NewFromInt(300),
			SuhoorAllowance:     decimal.NewFromInt(150),
			TransportationBonus: decimal.NewFromInt(200),
		},
		Hajj: HajjRules{
			MinServiceYears:   2,
			MinYearsSinceHajj: 5,
			LeaveDays:         10,
			Bonus:             decimal.NewFromInt(2000),
			TravelAllowance:   decimal.NewFromInt(3000),
			ReturnBonus:       decimal.NewFromInt(1000),
			SpouseExtension:   true,
			SpouseAllowance:   decimal.NewFromInt(1500),
			FamilyTravelBonus: decimal.NewFromInt(2000),
		},
		EOSB: EOSBRules{
			Tiers: []EOSBTierRule{
				{MaxYears: 5, DaysPerYear: 15},
				{MaxYears: 0, DaysPerYear: 30},
			},
			LoyaltyBonusYears:  10,
			LoyaltyBonus:       decimal.NewFromInt(5000),
			LongServiceYears:   15,
			LongServiceAward:   decimal.NewFromInt(10000),
			AllowancesIncluded: []string{"housing", "transport"},
			AllowancesExcluded: []string{"meal", "communication"},
		},
		Bonuses: BonusRules{
			RatingMultipliers: map[PerformanceRating]decimal.Decimal{
				RatingExceptional:    decimal.NewFromFloat(0.25),
				RatingExceeds:        decimal.NewFromFloat(0.15),
				RatingMeets:          decimal.NewFromFloat(0.05),
				RatingBelow:          decimal.Zero,
				RatingUnsatisfactory: decimal.Zero,
			},
			LeadershipBonus:        decimal.NewFromInt(1000),
			TeamRatingRate:         decimal.NewFromInt(100),
			ProfitSharingPercent:   decimal.NewFromFloat(0.02),
			RetentionMilestone:     5,
			RetentionBonus:         decimal.NewFromInt(2000),
			RetentionVestingMonths: 12,
		},
		Danger: DangerRules{
			RiskMultipliers: map[RiskLevel]decimal.Decimal{
				RiskLow:     decimal.NewFromFloat(0.05),
				RiskMedium:  decimal.NewFromFloat(0.10),
				RiskHigh:    decimal.NewFromFloat(0.20),
				RiskExtreme: decimal.NewFromFloat(0.35),
			},
			TrainingBonus:     decimal.NewFromInt(200),
			InsuranceCoverage: decimal.NewFromInt(1000),
		},
	}
}

// CompanyPolicyRecord carries a company's optional overrides of the statutory
// defaults. Nil fields keep the default; a present zero is a deliberate
// override, so allowances can be switched off per company.
type CompanyPolicyRecord struct {
	CompanyID string `yaml:"company_id,omitempty" json:"company_id,omitempty"`

	HousingPercent          *decimal.Decimal `yaml:"housing_percent,omitempty" json:"housing_percent,omitempty"`
	HousingMax              *decimal.Decimal `yaml:"housing_max,omitempty" json:"housing_max,omitempty"`
	Transport               *decimal.Decimal `yaml:"transport,omitempty" json:"transport,omitempty"`
	Parking                 *decimal.Decimal `yaml:"parking,omitempty" json:"parking,omitempty"`
	EmployeeEducation       *decimal.Decimal `yaml:"employee_education,omitempty" json:"employee_education,omitempty"`
	ChildEducation          *decimal.Decimal `yaml:"child_education,omitempty" json:"child_education,omitempty"`
	ProfessionalDevelopment *decimal.Decimal `yaml:"professional_development,omitempty" json:"professional_development,omitempty"`
	LanguageTraining        *decimal.Decimal `yaml:"language_training,omitempty" json:"language_training,omitempty"`
	Certification           *decimal.Decimal `yaml:"certification,omitempty" json:"certification,omitempty"`
	Spouse                  *decimal.Decimal `yaml:"spouse,omitempty" json:"spouse,omitempty"`
	ChildFamily             *decimal.Decimal `yaml:"child_family,omitempty" json:"child_family,omitempty"`
	DependentParents        *decimal.Decimal `yaml:"dependent_parents,omitempty" json:"dependent_parents,omitempty"`
	MedicalBase             *decimal.Decimal `yaml:"medical_base,omitempty" json:"medical_base,omitempty"`
	MedicalPerMember        *decimal.Decimal `yaml:"medical_per_member,omitempty" json:"medical_per_member,omitempty"`
	CostOfLiving            *decimal.Decimal `yaml:"cost_of_living,omitempty" json:"cost_of_living,omitempty"`
	Medical                 *decimal.Decimal `yaml:"medical,omitempty" json:"medical,omitempty"`
	Communication           *decimal.Decimal `yaml:"communication,omitempty" json:"communication,omitempty"`
	Fuel                    *decimal.Decimal `yaml:"fuel,omitempty" json:"fuel,omitempty"`
	Meal                    *decimal.Decimal `yaml:"meal,omitempty" json:"meal,omitempty"`
	Uniform                 *decimal.Decimal `yaml:"uniform,omitempty" json:"uniform,omitempty"`
	Tools                   *decimal.Decimal `yaml:"tools,omitempty" json:"tools,omitempty"`
	Representation          *decimal.Decimal `yaml:"representation,omitempty" json:"representation,omitempty"`

	MinimumWage      *decimal.Decimal `yaml:"minimum_wage,omitempty" json:"minimum_wage,omitempty"`
	GOSIEmployeeRate *decimal.Decimal `yaml:"gosi_employee_rate,omitempty" json:"gosi_employee_rate,omitempty"`

	LeadershipBonus *decimal.Decimal `yaml:"leadership_bonus,omitempty" json:"leadership_bonus,omitempty"`
	RetentionBonus  *decimal.Decimal `yaml:"retention_bonus,omitempty" json:"retention_bonus,omitempty"`

	HajjSpouseExtension *bool `yaml:"hajj_spouse_extension,omitempty" json:"hajj_spouse_extension,omitempty"`
}

func override(dst *decimal.Decimal, src *decimal.Decimal) {
	if src != nil {
		*dst = *src
	}
}

// Resolve merges the company overrides over the statutory defaults and
// returns the effective rule set. A nil receiver yields the pure defaults.
func (c *CompanyPolicyRecord) Resolve() PolicyConfig {
	cfg := DefaultPolicy()
	if c == nil {
		return cfg
	}

	override(&cfg.Allowances.HousingPercent, c.HousingPercent)
	override(&cfg.Allowances.HousingMax, c.HousingMax)
	override(&cfg.Allowances.Transport, c.Transport)
	override(&cfg.Allowances.Parking, c.Parking)
	override(&cfg.Allowances.EmployeeEducation, c.EmployeeEducation)
	override(&cfg.Allowances.ChildEducation, c.ChildEducation)
	override(&cfg.Allowances.ProfessionalDevelopment, c.ProfessionalDevelopment)
	override(&cfg.Allowances.LanguageTraining, c.LanguageTraining)
	override(&cfg.Allowances.Certification, c.Certification)
	override(&cfg.Allowances.Spouse, c.Spouse)
	override(&cfg.Allowances.ChildFamily, c.ChildFamily)
	override(&cfg.Allowances.DependentParents, c.DependentParents)
	override(&cfg.Allowances.MedicalBase, c.MedicalBase)
	override(&cfg.Allowances.MedicalPerMember, c.MedicalPerMember)
	override(&cfg.Allowances.CostOfLiving, c.CostOfLiving)
	override(&cfg.Allowances.Medical, c.Medical)
	override(&cfg.Allowances.Communication, c.Communication)
	override(&cfg.Allowances.Fuel, c.Fuel)
	override(&cfg.Allowances.Meal, c.Meal)
	override(&cfg.Allowances.Uniform, c.Uniform)
	override(&cfg.Allowances.Tools, c.Tools)
	override(&cfg.Allowances.Representation, c.Representation)

	override(&cfg.Statutory.MinimumWage, c.MinimumWage)
	override(&cfg.Statutory.GOSIEmployeeRate, c.GOSIEmployeeRate)

	override(&cfg.Bonuses.LeadershipBonus, c.LeadershipBonus)
	override(&cfg.Bonuses.RetentionBonus, c.RetentionBonus)

	if c.HajjSpouseExtension != nil {
		cfg.Hajj.SpouseExtension = *c.HajjSpouseExtension
	}

	return cfg
}
