package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestYearsOfService(t *testing.T) {
	asOf := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		hireDate      time.Time
		expectedYears int
	}{
		{
			name:          "Hired today",
			hireDate:      asOf,
			expectedYears: 0,
		},
		{
			name:          "Just under one year",
			hireDate:      asOf.AddDate(0, 0, -364),
			expectedYears: 0,
		},
		{
			name:          "Just over one year",
			hireDate:      asOf.AddDate(-1, 0, -5),
			expectedYears: 1,
		},
		{
			name:          "Five years and change",
			hireDate:      asOf.AddDate(-5, 0, -30),
			expectedYears: 5,
		},
		{
			name:          "Hire date in the future clamps to zero",
			hireDate:      asOf.AddDate(1, 0, 0),
			expectedYears: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp := &EmployeeRecord{HireDate: tt.hireDate}
			assert.Equal(t, tt.expectedYears, emp.YearsOfService(asOf))
		})
	}
}

func TestMonthsOfService(t *testing.T) {
	asOf := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	emp := &EmployeeRecord{HireDate: asOf.AddDate(0, 0, -92)}
	assert.Equal(t, 3, emp.MonthsOfService(asOf))

	emp = &EmployeeRecord{HireDate: asOf.AddDate(0, 0, -29)}
	assert.Equal(t, 0, emp.MonthsOfService(asOf))
}

func TestHourlyRate(t *testing.T) {
	// 8660 / (40 * 4.33) = 8660 / 173.2 = exactly 50
	emp := &EmployeeRecord{BasicSalary: decimal.NewFromInt(8660)}
	rate := emp.HourlyRate(decimal.NewFromInt(40))
	assert.True(t, rate.Equal(decimal.NewFromInt(50)),
		"Expected 50, got %s", rate)

	// Zero weekly hours must not panic
	assert.True(t, emp.HourlyRate(decimal.Zero).IsZero())
}

func TestDailyWage(t *testing.T) {
	emp := &EmployeeRecord{BasicSalary: decimal.NewFromInt(9000)}
	assert.True(t, emp.DailyWage().Equal(decimal.NewFromInt(300)),
		"Expected 300, got %s", emp.DailyWage())
}

func TestPeriodOvertimeHours(t *testing.T) {
	period := &PayPeriodRecord{
		RegularHours: decimal.NewFromInt(176),
		TotalHours:   decimal.NewFromInt(190),
	}
	assert.True(t, period.OvertimeHours().Equal(decimal.NewFromInt(14)))

	// Total below regular never produces negative overtime
	period = &PayPeriodRecord{
		RegularHours: decimal.NewFromInt(176),
		TotalHours:   decimal.NewFromInt(160),
	}
	assert.True(t, period.OvertimeHours().IsZero())
}

func TestPositionLevelIsManagerial(t *testing.T) {
	assert.False(t, PositionStaff.IsManagerial())
	assert.False(t, PositionSupervisor.IsManagerial())
	assert.True(t, PositionManager.IsManagerial())
	assert.True(t, PositionExecutive.IsManagerial())
}
