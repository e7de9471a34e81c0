package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nhamdan/ksapay/internal/domain"
)

const validRunFile = `
as_of: 2026-09-01T00:00:00Z
company_policy:
  company_id: "acme"
  transport: 1200
items:
  - employee:
      id: "emp-001"
      company_id: "acme"
      basic_salary: 12000
      hire_date: 2018-03-15T00:00:00Z
      is_saudi_national: true
      city: "Riyadh"
      marital_status: "married"
      family_size: 4
      performance_rating: "exceeds"
    period:
      period_id: "2026-09"
      regular_hours: 176
      total_hours: 190
`

func writeRunFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()

	run, err := parser.LoadFromFile(writeRunFile(t, validRunFile))
	require.NoError(t, err)

	require.NotNil(t, run.AsOf)
	assert.Equal(t, 2026, run.AsOf.Year())

	require.NotNil(t, run.Policy)
	assert.Equal(t, "acme", run.Policy.CompanyID)
	require.NotNil(t, run.Policy.Transport)
	assert.True(t, run.Policy.Transport.Equal(decimal.NewFromInt(1200)))

	require.Len(t, run.Items, 1)
	item := run.Items[0]
	assert.Equal(t, "emp-001", item.Employee.ID)
	assert.True(t, item.Employee.BasicSalary.Equal(decimal.NewFromInt(12000)))
	assert.Equal(t, domain.Married, item.Employee.MaritalStatus)
	assert.True(t, item.Period.TotalHours.Equal(decimal.NewFromInt(190)))
}

func TestLoadFromFileMissing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFileMalformedYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeRunFile(t, "items: [ {"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateRunFile(t *testing.T) {
	var base RunFile
	require.NoError(t, yaml.Unmarshal([]byte(validRunFile), &base))
	require.Len(t, base.Items, 1)

	parser := NewInputParser()

	tests := []struct {
		name    string
		mutate  func(item *RunItem)
		wantErr string
	}{
		{
			name:    "Missing employee id",
			mutate:  func(item *RunItem) { item.Employee.ID = "" },
			wantErr: "employee id is required",
		},
		{
			name:    "Negative salary",
			mutate:  func(item *RunItem) { item.Employee.BasicSalary = decimal.NewFromInt(-100) },
			wantErr: "basic salary cannot be negative",
		},
		{
			name:    "Unknown rating",
			mutate:  func(item *RunItem) { item.Employee.PerformanceRating = "stellar" },
			wantErr: "unknown performance rating",
		},
		{
			name:    "Missing period id",
			mutate:  func(item *RunItem) { item.Period.PeriodID = "" },
			wantErr: "period id is required",
		},
		{
			name:    "Negative hours",
			mutate:  func(item *RunItem) { item.Period.TotalHours = decimal.NewFromInt(-10) },
			wantErr: "hours cannot be negative",
		},
		{
			name:    "Unknown holiday kind",
			mutate:  func(item *RunItem) { item.Period.HolidayKind = "bank" },
			wantErr: "unknown holiday kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := base.Items[0]
			tt.mutate(&item)

			err := parser.ValidateRunFile(&RunFile{Items: []RunItem{item}})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	err := parser.ValidateRunFile(&RunFile{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no items provided")
}
