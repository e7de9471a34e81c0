package calculation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nhamdan/ksapay/internal/domain"
)

// resultNamespace seeds the UUIDv5 derivation of result identifiers so that
// identical inputs always produce the identical result ID.
var resultNamespace = uuid.MustParse("8a4e7d52-31c9-4f47-9f0a-6d1b5c9f2e38")

// Logger is the minimal logging surface the engine needs. The CLI satisfies
// it with the standard log package; tests leave it nil.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
}

// Engine computes complete payroll packages. It is stateless apart from the
// reference time and optional logger, so one Engine is safe to share across
// any number of concurrent calculations.
type Engine struct {
	asOf   time.Time
	logger Logger
}

// NewEngine creates an engine that evaluates service years and stamps
// results at the given reference time. Fixing the clock here is what makes
// repeat runs byte-identical.
func NewEngine(asOf time.Time) *Engine {
	return &Engine{asOf: asOf.UTC().Truncate(time.Second)}
}

// SetLogger enables debug logging of intermediate figures.
func (e *Engine) SetLogger(l Logger) { e.logger = l }

// AsOf returns the engine's reference time.
func (e *Engine) AsOf() time.Time { return e.asOf }

// Calculate computes the complete pay package for one (employee, period)
// pair. A nil policy record means pure statutory defaults. It returns an
// error only for structurally invalid input; every statutory violation is
// reported as data on the result, never as an error.
func (e *Engine) Calculate(emp *domain.EmployeeRecord, period *domain.PayPeriodRecord, companyPolicy *domain.CompanyPolicyRecord) (*domain.PayrollResult, error) {
	if err := e.validateInput(emp, period); err != nil {
		return nil, err
	}

	policy := companyPolicy.Resolve()

	allowances := CalculateAllowances(emp, policy)
	overtime := CalculateOvertime(emp, period, policy)
	shifts := CalculateShiftDifferentials(emp, period, policy)
	ramadan := CalculateRamadanAdjustments(period, policy)
	hajj := CalculateHajjEntitlement(emp, policy, e.asOf)
	eosb := CalculateEOSB(emp, period, policy, e.asOf)
	bonuses := CalculatePerformanceBonuses(emp, period, policy, e.asOf)
	dangerPay := CalculateDangerPay(emp, policy)

	result := &domain.PayrollResult{
		ID:         resultID(emp.ID, period.PeriodID),
		CompanyID:  emp.CompanyID,
		EmployeeID: emp.ID,
		PeriodID:   period.PeriodID,
		BaseSalary: emp.BasicSalary,
		Allowances: allowances,
		Overtime:   overtime,
		Shifts:     shifts,
		Ramadan:    ramadan,
		Hajj:       hajj,
		EOSB:       eosb,
		Bonuses:    bonuses,
		DangerPay:  dangerPay,

		CalculatedAt: e.asOf,
	}

	result.TotalGross = result.GrossComponents().Round(2)

	gosi := result.TotalGross.Mul(policy.Statutory.GOSIEmployeeRate).Round(2)
	result.Deductions = domain.DeductionBreakdown{
		GOSIRate: policy.Statutory.GOSIEmployeeRate,
		GOSI:     gosi,
		Loans:    emp.LoanDeductions,
		Other:    emp.OtherDeductions,
	}
	result.TotalDeductions = result.Deductions.Total().Round(2)
	result.NetPay = result.TotalGross.Sub(result.TotalDeductions)

	result.ComplianceScore = e.complianceScore(result, policy)

	if e.logger != nil {
		e.logger.Debugf("payroll %s: gross=%s deductions=%s net=%s score=%d",
			result.ID, result.TotalGross, result.TotalDeductions, result.NetPay, result.ComplianceScore)
	}

	return result, nil
}

// validateInput rejects structurally invalid records. Merely-absent optional
// numerics are valid business states and pass through as zeros.
func (e *Engine) validateInput(emp *domain.EmployeeRecord, period *domain.PayPeriodRecord) error {
	if emp == nil {
		return fmt.Errorf("employee record is required")
	}
	if period == nil {
		return fmt.Errorf("pay period record is required")
	}
	if emp.BasicSalary.IsNegative() {
		return fmt.Errorf("employee %s: basic salary cannot be negative", emp.ID)
	}
	if emp.HireDate.IsZero() {
		return fmt.Errorf("employee %s: hire date is required", emp.ID)
	}
	if emp.HireDate.After(e.asOf) {
		return fmt.Errorf("employee %s: hire date %s is in the future", emp.ID, emp.HireDate.Format("2006-01-02"))
	}
	if emp.PerformanceRating != "" && !emp.PerformanceRating.Valid() {
		return fmt.Errorf("employee %s: unknown performance rating %q", emp.ID, emp.PerformanceRating)
	}
	if emp.HazardousWork && emp.RiskLevel != "" && !emp.RiskLevel.Valid() {
		return fmt.Errorf("employee %s: unknown risk level %q", emp.ID, emp.RiskLevel)
	}
	if emp.LoanDeductions.IsNegative() || emp.OtherDeductions.IsNegative() {
		return fmt.Errorf("employee %s: deduction amounts cannot be negative", emp.ID)
	}

	for name, hours := range map[string]decimal.Decimal{
		"regular":           period.RegularHours,
		"total":             period.TotalHours,
		"night":             period.NightHours,
		"weekend":           period.WeekendHours,
		"holiday":           period.HolidayHours,
		"on_call":           period.OnCallHours,
		"callback":          period.CallbackHours,
		"friday_overtime":   period.FridayOvertimeHours,
		"saturday_overtime": period.SaturdayOvertimeHours,
		"holiday_overtime":  period.HolidayOvertimeHours,
	} {
		if hours.IsNegative() {
			return fmt.Errorf("period %s: %s hours cannot be negative", period.PeriodID, name)
		}
	}

	return nil
}

// complianceScore starts at 100 and subtracts the fixed statutory penalties,
// floored at zero. The validator re-derives the same floors independently.
func (e *Engine) complianceScore(result *domain.PayrollResult, policy domain.PolicyConfig) int {
	score := 100

	if result.TotalGross.LessThan(policy.Statutory.MinimumWage) {
		score -= policy.Statutory.MinimumWagePenalty
	}
	if result.Overtime.OvertimeHours.GreaterThan(policy.Statutory.MonthlyOvertimeCap) {
		score -= policy.Statutory.OvertimeCapPenalty
	}
	housingFloor := result.TotalGross.Mul(policy.Statutory.HousingShareOfGross)
	if result.Allowances.Housing.Amount.LessThan(housingFloor) {
		score -= policy.Statutory.HousingSharePenalty
	}

	if score < 0 {
		score = 0
	}
	return score
}

// resultID derives a stable identifier for the (employee, period) pair.
func resultID(employeeID, periodID string) string {
	return uuid.NewSHA1(resultNamespace, []byte(employeeID+"|"+periodID)).String()
}
