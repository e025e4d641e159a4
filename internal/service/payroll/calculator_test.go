package payroll

import (
	"testing"
	"time"

	"github.com/cloudhrms/hrms-backend-go/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func calendarCalculator() Calculator {
	return NewCalculator(config.PayrollConfig{
		WorkingDaysPolicy: config.WorkingDaysCalendar,
		FixedWorkingDays:  30,
	})
}

func fixedCalculator(days int) Calculator {
	return NewCalculator(config.PayrollConfig{
		WorkingDaysPolicy: config.WorkingDaysFixed,
		FixedWorkingDays:  days,
	})
}

func TestWorkingDaysCalendarPolicy(t *testing.T) {
	calc := calendarCalculator()

	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2026, time.January, 31},
		{2026, time.February, 28},
		{2028, time.February, 29},
		{2026, time.April, 30},
		{2026, time.December, 31},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, calc.WorkingDays(c.year, c.month), "%d-%d", c.year, c.month)
	}
}

func TestWorkingDaysFixedPolicy(t *testing.T) {
	calc := fixedCalculator(30)

	assert.Equal(t, 30, calc.WorkingDays(2026, time.February))
	assert.Equal(t, 30, calc.WorkingDays(2026, time.July))
}

func TestComputeFullAttendance(t *testing.T) {
	calc := fixedCalculator(30)

	comp := calc.Compute(decimal.NewFromInt(30000), 30, 30)

	assert.Equal(t, 0, comp.AbsentDays)
	assert.Equal(t, 0, comp.LOPDays)
	assert.True(t, comp.NetSalary.Equal(decimal.NewFromInt(30000)), "net = %s", comp.NetSalary)
	assert.True(t, comp.GrossSalary.Equal(decimal.NewFromInt(30000)))
}

func TestComputePartialAttendance(t *testing.T) {
	calc := fixedCalculator(30)

	// 30000 basic over 30 working days, 25 present: 5 LOP days at 1000/day.
	comp := calc.Compute(decimal.NewFromInt(30000), 30, 25)

	assert.Equal(t, 5, comp.AbsentDays)
	assert.Equal(t, 5, comp.LOPDays)
	assert.True(t, comp.NetSalary.Equal(decimal.NewFromInt(25000)), "net = %s", comp.NetSalary)
}

func TestComputeZeroAttendance(t *testing.T) {
	calc := fixedCalculator(30)

	comp := calc.Compute(decimal.NewFromInt(30000), 30, 0)

	assert.Equal(t, 30, comp.LOPDays)
	assert.True(t, comp.NetSalary.Equal(decimal.Zero), "net = %s", comp.NetSalary)
}

func TestComputeRoundsToTwoPlaces(t *testing.T) {
	calc := fixedCalculator(30)

	// 10000/30 is a repeating decimal; only the final net is rounded.
	comp := calc.Compute(decimal.NewFromInt(10000), 30, 29)

	assert.True(t, comp.NetSalary.Equal(decimal.RequireFromString("9666.67")), "net = %s", comp.NetSalary)
}

// Net must always equal basic minus per-day salary times absent days,
// rounded to two places.
func TestComputeNetProperty(t *testing.T) {
	calc := calendarCalculator()

	cases := []struct {
		basic   string
		year    int
		month   time.Month
		present int
	}{
		{"30000", 2026, time.June, 30},
		{"45123.50", 2026, time.February, 20},
		{"99999.99", 2026, time.July, 0},
		{"1", 2026, time.January, 15},
	}

	for _, c := range cases {
		basic := decimal.RequireFromString(c.basic)
		working := calc.WorkingDays(c.year, c.month)
		comp := calc.Compute(basic, working, c.present)

		perDay := basic.Div(decimal.NewFromInt(int64(working)))
		absent := decimal.NewFromInt(int64(working - c.present))
		want := basic.Sub(perDay.Mul(absent)).Round(2)

		assert.True(t, comp.NetSalary.Equal(want),
			"basic=%s present=%d: net = %s, want %s", c.basic, c.present, comp.NetSalary, want)
		assert.Equal(t, working-c.present, comp.AbsentDays)
	}
}
