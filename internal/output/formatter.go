package output

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nhamdan/ksapay/internal/domain"
)

// RunResultItem pairs one payroll result with its compliance report.
type RunResultItem struct {
	Result     *domain.PayrollResult    `json:"result"`
	Compliance *domain.ComplianceReport `json:"compliance,omitempty"`
}

// RunResults is the full output of a payroll run.
type RunResults struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Items       []RunResultItem `json:"items"`
}

// Formatter renders run results into a byte stream for a given output format.
type Formatter interface {
	Name() string
	Format(results *RunResults) ([]byte, error)
}

// GetFormatterByName returns the formatter registered under the given name.
func GetFormatterByName(name string) (Formatter, error) {
	switch name {
	case "console":
		return ConsolePayslipFormatter{}, nil
	case "json":
		return JSONFormatter{}, nil
	case "csv":
		return CSVSummarizer{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", name)
	}
}

// FormatCurrency formats a decimal as a SAR amount with two decimal places.
func FormatCurrency(amount decimal.Decimal) string {
	return "SAR " + amount.StringFixed(2)
}

// FormatPercentage formats a decimal rate (0.10) as a percentage (10.0%).
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
