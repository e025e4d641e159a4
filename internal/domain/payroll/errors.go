package payroll

import "errors"

var (
	ErrPayrollNotFound = errors.New("payroll record not found")

	// ErrNoPayrollForPeriod means a period-level operation (bulk PDF)
	// found no generated records.
	ErrNoPayrollForPeriod = errors.New("no payroll found for period")
)
