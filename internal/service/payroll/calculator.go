package payroll

import (
	"time"

	"github.com/cloudhrms/hrms-backend-go/internal/config"
	"github.com/shopspring/decimal"
)

// Calculator holds the working-days policy and derives salary figures from
// attendance. All arithmetic is decimal; only the final net is rounded.
type Calculator struct {
	policy    config.WorkingDaysPolicy
	fixedDays int
}

func NewCalculator(cfg config.PayrollConfig) Calculator {
	return Calculator{
		policy:    cfg.WorkingDaysPolicy,
		fixedDays: cfg.FixedWorkingDays,
	}
}

// WorkingDays returns the per-day salary denominator for a period.
func (c Calculator) WorkingDays(year int, month time.Month) int {
	if c.policy == config.WorkingDaysFixed {
		return c.fixedDays
	}
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Computation is one period's derived salary figures.
type Computation struct {
	WorkingDays int
	PresentDays int
	AbsentDays  int
	LOPDays     int
	GrossSalary decimal.Decimal
	NetSalary   decimal.Decimal
}

// Compute derives the payroll figures for one employee and period. Every
// absent day is a loss-of-pay day; there is no paid-leave offset. Net is
// basic minus per-day salary times LOP days, rounded to two places.
func (c Calculator) Compute(basic decimal.Decimal, workingDays, presentDays int) Computation {
	absentDays := workingDays - presentDays
	lopDays := absentDays

	perDay := basic.Div(decimal.NewFromInt(int64(workingDays)))
	deduction := perDay.Mul(decimal.NewFromInt(int64(lopDays)))

	return Computation{
		WorkingDays: workingDays,
		PresentDays: presentDays,
		AbsentDays:  absentDays,
		LOPDays:     lopDays,
		GrossSalary: basic,
		NetSalary:   basic.Sub(deduction).Round(2),
	}
}
