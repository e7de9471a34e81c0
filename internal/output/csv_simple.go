package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"
)

// CSVSummarizer implements the simple summary CSV output (one row per
// employee result).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *RunResults) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"EmployeeID", "PeriodID", "BaseSalary", "Allowances", "Overtime", "Shifts", "Bonuses", "DangerPay", "TotalGross", "GOSI", "TotalDeductions", "NetPay", "ComplianceScore", "Violations"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	items := append([]RunResultItem(nil), results.Items...)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Result.EmployeeID != items[j].Result.EmployeeID {
			return items[i].Result.EmployeeID < items[j].Result.EmployeeID
		}
		return items[i].Result.PeriodID < items[j].Result.PeriodID
	})
	for _, item := range items {
		r := item.Result
		violations := 0
		if item.Compliance != nil {
			violations = len(item.Compliance.Violations)
		}
		row := []string{
			r.EmployeeID,
			r.PeriodID,
			r.BaseSalary.StringFixed(2),
			r.Allowances.Total().StringFixed(2),
			r.Overtime.TotalAmount.StringFixed(2),
			r.Shifts.Total().StringFixed(2),
			r.Bonuses.Total().StringFixed(2),
			r.DangerPay.Total.StringFixed(2),
			r.TotalGross.StringFixed(2),
			r.Deductions.GOSI.StringFixed(2),
			r.TotalDeductions.StringFixed(2),
			r.NetPay.StringFixed(2),
			strconv.Itoa(r.ComplianceScore),
			strconv.Itoa(violations),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
