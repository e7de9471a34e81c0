package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nhamdan/ksapay/internal/domain"
)

// RunItem pairs one employee with the pay period being calculated.
type RunItem struct {
	Employee domain.EmployeeRecord  `yaml:"employee" json:"employee"`
	Period   domain.PayPeriodRecord `yaml:"period" json:"period"`
}

// RunFile is the input document for a payroll run: the optional company
// policy overrides plus the (employee, period) pairs to compute.
type RunFile struct {
	AsOf   *time.Time                  `yaml:"as_of,omitempty" json:"as_of,omitempty"`
	Policy *domain.CompanyPolicyRecord `yaml:"company_policy,omitempty" json:"company_policy,omitempty"`
	Items  []RunItem                   `yaml:"items" json:"items"`
}

// InputParser handles parsing of payroll run files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a run file.
func (ip *InputParser) LoadFromFile(filename string) (*RunFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var run RunFile
	if err := yaml.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRunFile(&run); err != nil {
		return nil, fmt.Errorf("run file validation failed: %w", err)
	}

	return &run, nil
}

// ValidateRunFile validates the loaded run file. Structural problems are
// errors here; statutory violations are the engine's output, not this
// parser's concern.
func (ip *InputParser) ValidateRunFile(run *RunFile) error {
	if len(run.Items) == 0 {
		return fmt.Errorf("no items provided")
	}

	for i, item := range run.Items {
		if err := ip.validateEmployee(&item.Employee); err != nil {
			return fmt.Errorf("item %d employee validation failed: %w", i, err)
		}
		if err := ip.validatePeriod(&item.Period); err != nil {
			return fmt.Errorf("item %d period validation failed: %w", i, err)
		}
	}

	return nil
}

func (ip *InputParser) validateEmployee(emp *domain.EmployeeRecord) error {
	if emp.ID == "" {
		return fmt.Errorf("employee id is required")
	}
	if emp.BasicSalary.IsNegative() {
		return fmt.Errorf("basic salary cannot be negative")
	}
	if emp.HireDate.IsZero() {
		return fmt.Errorf("hire date is required")
	}
	if emp.PerformanceRating != "" && !emp.PerformanceRating.Valid() {
		return fmt.Errorf("unknown performance rating %q", emp.PerformanceRating)
	}
	if emp.RiskLevel != "" && !emp.RiskLevel.Valid() {
		return fmt.Errorf("unknown risk level %q", emp.RiskLevel)
	}
	if emp.FamilySize < 0 || emp.ChildrenCount < 0 || emp.DependentParents < 0 {
		return fmt.Errorf("family counts cannot be negative")
	}
	if emp.YearsSinceLastHajj < 0 {
		return fmt.Errorf("years since last hajj cannot be negative")
	}
	return nil
}

func (ip *InputParser) validatePeriod(period *domain.PayPeriodRecord) error {
	if period.PeriodID == "" {
		return fmt.Errorf("period id is required")
	}
	if period.RegularHours.IsNegative() || period.TotalHours.IsNegative() {
		return fmt.Errorf("hours cannot be negative")
	}
	if period.NightHours.IsNegative() || period.WeekendHours.IsNegative() ||
		period.HolidayHours.IsNegative() || period.OnCallHours.IsNegative() ||
		period.CallbackHours.IsNegative() {
		return fmt.Errorf("shift hours cannot be negative")
	}
	if period.Rotations < 0 {
		return fmt.Errorf("rotations cannot be negative")
	}
	if period.HolidayKind != "" {
		switch period.HolidayKind {
		case domain.HolidayNational, domain.HolidayReligious, domain.HolidayCompany:
		default:
			return fmt.Errorf("unknown holiday kind %q", period.HolidayKind)
		}
	}
	return nil
}
