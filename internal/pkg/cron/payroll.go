package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cloudhrms/hrms-backend-go/internal/domain/payroll"
)

type PayrollJobs struct {
	payrollSvc payroll.PayrollService
}

func NewPayrollJobs(payrollSvc payroll.PayrollService) *PayrollJobs {
	return &PayrollJobs{payrollSvc: payrollSvc}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("generate_monthly_payroll", 1*time.Hour, j.GenerateMonthlyPayroll)
}

// GenerateMonthlyPayroll writes the previous month's payroll for every
// employee. The hourly tick is gated to the first hour of the first day of
// the month; generation is an upsert, so an accidental second run in that
// window rewrites identical records.
func (j *PayrollJobs) GenerateMonthlyPayroll(ctx context.Context) error {
	now := time.Now().UTC()
	if now.Day() != 1 || now.Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting monthly payroll generation")

	count, err := j.payrollSvc.GenerateForPreviousMonth(ctx)
	if err != nil {
		return err
	}

	slog.Info("Cron: Monthly payroll generated", "count", count)
	return nil
}
