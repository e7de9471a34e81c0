package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nhamdan/ksapay/internal/domain"
)

// ConsolePayslipFormatter renders a detailed per-employee payslip breakdown.
type ConsolePayslipFormatter struct{}

func (c ConsolePayslipFormatter) Name() string { return "console" }

func (c ConsolePayslipFormatter) Format(results *RunResults) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "SAUDI PAYROLL CALCULATION REPORT")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintf(&buf, "Generated: %s\n", results.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintln(&buf)

	for i, item := range results.Items {
		r := item.Result
		fmt.Fprintf(&buf, "EMPLOYEE %d: %s (period %s)\n", i+1, r.EmployeeID, r.PeriodID)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))

		fmt.Fprintln(&buf, "EARNINGS:")
		fmt.Fprintf(&buf, "  Basic Salary:          %s\n", FormatCurrency(r.BaseSalary))
		fmt.Fprintf(&buf, "  Allowances:            %s\n", FormatCurrency(r.Allowances.Total()))
		fmt.Fprintf(&buf, "    Housing:             %s", FormatCurrency(r.Allowances.Housing.Amount))
		if r.Allowances.Housing.Capped {
			fmt.Fprintf(&buf, " (capped at %s)", FormatCurrency(r.Allowances.Housing.MaxAmount))
		}
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "    Transport:           %s\n", FormatCurrency(r.Allowances.Transport.Total()))
		fmt.Fprintf(&buf, "    Education:           %s\n", FormatCurrency(r.Allowances.Education.Total()))
		fmt.Fprintf(&buf, "    Family:              %s\n", FormatCurrency(r.Allowances.Family.Total()))
		fmt.Fprintf(&buf, "    Other:               %s\n", FormatCurrency(r.Allowances.Flat.Total()))
		fmt.Fprintf(&buf, "  Overtime:              %s", FormatCurrency(r.Overtime.TotalAmount))
		if r.Overtime.ExceedsMonthlyCap {
			fmt.Fprintf(&buf, " [EXCEEDS MONTHLY CAP]")
		}
		fmt.Fprintln(&buf)
		for _, tier := range r.Overtime.Tiers {
			fmt.Fprintf(&buf, "    %s x%s: %s h = %s\n",
				tier.AppliesTo, tier.Multiplier.StringFixed(2), tier.Hours.StringFixed(1), FormatCurrency(tier.Amount))
		}
		fmt.Fprintf(&buf, "  Shift Differentials:   %s\n", FormatCurrency(r.Shifts.Total()))
		fmt.Fprintf(&buf, "  Performance Bonuses:   %s\n", FormatCurrency(r.Bonuses.Total()))
		if r.DangerPay.Hazardous {
			fmt.Fprintf(&buf, "  Danger Pay (%s):   %s\n", r.DangerPay.RiskLevel, FormatCurrency(r.DangerPay.Total))
		}
		fmt.Fprintf(&buf, "  TOTAL GROSS:           %s\n", FormatCurrency(r.TotalGross))
		fmt.Fprintln(&buf)

		fmt.Fprintln(&buf, "DEDUCTIONS:")
		fmt.Fprintf(&buf, "  GOSI (%s):          %s\n", FormatPercentage(r.Deductions.GOSIRate), FormatCurrency(r.Deductions.GOSI))
		if r.Deductions.Loans.GreaterThan(decimal.Zero) {
			fmt.Fprintf(&buf, "  Loan Repayments:       %s\n", FormatCurrency(r.Deductions.Loans))
		}
		if r.Deductions.Other.GreaterThan(decimal.Zero) {
			fmt.Fprintf(&buf, "  Other:                 %s\n", FormatCurrency(r.Deductions.Other))
		}
		fmt.Fprintf(&buf, "  NET PAY:               %s\n", FormatCurrency(r.NetPay))
		fmt.Fprintln(&buf)

		if r.Ramadan.Applied {
			fmt.Fprintln(&buf, "RAMADAN ADJUSTMENTS:")
			fmt.Fprintf(&buf, "  Daily Hours Reduction: %s\n", r.Ramadan.HoursReduction.StringFixed(0))
			fmt.Fprintf(&buf, "  Iftar Allowance:       %s\n", FormatCurrency(r.Ramadan.IftarAllowance))
			fmt.Fprintf(&buf, "  Suhoor Allowance:      %s\n", FormatCurrency(r.Ramadan.SuhoorAllowance))
			fmt.Fprintln(&buf)
		}

		if r.Hajj.Eligible {
			fmt.Fprintln(&buf, "HAJJ ENTITLEMENT:")
			fmt.Fprintf(&buf, "  Paid Leave Days:       %d\n", r.Hajj.PaidLeaveDays)
			fmt.Fprintf(&buf, "  Bonus + Travel + Ret.: %s\n",
				FormatCurrency(r.Hajj.Bonus.Add(r.Hajj.TravelAllowance).Add(r.Hajj.ReturnBonus)))
			fmt.Fprintln(&buf)
		}

		label := "EOSB ACCRUAL (projection)"
		if !r.EOSB.Projection {
			label = "END OF SERVICE SETTLEMENT"
		}
		fmt.Fprintf(&buf, "%s:\n", label)
		fmt.Fprintf(&buf, "  Severance:             %s\n", FormatCurrency(r.EOSB.SeveranceTotal))
		fmt.Fprintf(&buf, "  Total:                 %s\n", FormatCurrency(r.EOSB.Total))
		fmt.Fprintln(&buf)

		fmt.Fprintf(&buf, "COMPLIANCE SCORE: %d/100\n", r.ComplianceScore)
		if item.Compliance != nil {
			writeComplianceSection(&buf, item.Compliance)
		}
		fmt.Fprintln(&buf)
	}

	return buf.Bytes(), nil
}

func writeComplianceSection(buf *bytes.Buffer, report *domain.ComplianceReport) {
	if report.LaborLawCompliant {
		fmt.Fprintln(buf, "COMPLIANCE: no labor law violations")
	} else {
		fmt.Fprintf(buf, "COMPLIANCE: %d violation(s)\n", len(report.Violations))
		for _, v := range report.Violations {
			fmt.Fprintf(buf, "  [%s] %s: %s\n", strings.ToUpper(string(v.Severity)), v.Type, v.Description)
			fmt.Fprintf(buf, "      %s\n", v.DescriptionArabic)
			fmt.Fprintf(buf, "      Penalty risk: %d/100\n", v.PenaltyRisk)
		}
	}
	for _, rec := range report.Recommendations {
		fmt.Fprintf(buf, "  RECOMMENDATION: %s\n", rec)
	}
}
