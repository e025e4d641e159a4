package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cloudhrms/hrms-backend-go/internal/domain/attendance"
	"github.com/cloudhrms/hrms-backend-go/internal/domain/employee"
	"github.com/cloudhrms/hrms-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// PayslipRenderer turns payroll records into PDF documents.
type PayslipRenderer interface {
	RenderPayslip(p payroll.Payroll) ([]byte, error)
	RenderPeriodSummary(year, month int, records []payroll.Payroll) ([]byte, error)
}

// PayslipMailer delivers a rendered payslip to an employee.
type PayslipMailer interface {
	SendPayslip(to, employeeName string, month, year int, pdf []byte) error
}

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	employee.EmployeeRepository
	attendance.AttendanceRepository

	calculator Calculator
	renderer   PayslipRenderer
	mailer     PayslipMailer
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	calculator Calculator,
	renderer PayslipRenderer,
	mailer PayslipMailer,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:    payrollRepo,
		EmployeeRepository:   employeeRepo,
		AttendanceRepository: attendanceRepo,
		calculator:           calculator,
		renderer:             renderer,
		mailer:               mailer,
	}
}

// GenerateForEmployee implements payroll.PayrollService. Regenerating an
// existing period replaces the stored record in place.
func (s *PayrollServiceImpl) GenerateForEmployee(ctx context.Context, req payroll.GenerateRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	record, err := s.generate(ctx, emp, req.Month, req.Year)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	record.EmployeeName = &emp.Name
	record.EmployeeCode = &emp.EmpCode

	return payroll.ToResponse(record), nil
}

func (s *PayrollServiceImpl) generate(ctx context.Context, emp employee.Employee, month, year int) (payroll.Payroll, error) {
	presentDays, err := s.AttendanceRepository.CountDistinctDates(ctx, emp.ID, year, time.Month(month))
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to count present days: %w", err)
	}

	workingDays := s.calculator.WorkingDays(year, time.Month(month))
	comp := s.calculator.Compute(emp.Salary, workingDays, presentDays)

	record := payroll.Payroll{
		EmployeeID:    emp.ID,
		Month:         month,
		Year:          year,
		BasicSalary:   emp.Salary,
		WorkingDays:   comp.WorkingDays,
		PresentDays:   comp.PresentDays,
		AbsentDays:    comp.AbsentDays,
		LOPDays:       comp.LOPDays,
		OvertimeHours: decimal.Zero,
		OvertimePay:   decimal.Zero,
		GrossSalary:   comp.GrossSalary,
		NetSalary:     comp.NetSalary,
		GeneratedOn:   time.Now().UTC(),
	}

	return s.PayrollRepository.Upsert(ctx, record)
}

// GenerateForAll implements payroll.PayrollService. The count reflects the
// records written before the first failure, if any.
func (s *PayrollServiceImpl) GenerateForAll(ctx context.Context, req payroll.GenerateAllRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return 0, err
	}

	generated := 0
	for _, emp := range employees {
		if _, err := s.generate(ctx, emp, req.Month, req.Year); err != nil {
			return generated, fmt.Errorf("failed to generate payroll for %s: %w", emp.EmpCode, err)
		}
		generated++
	}

	return generated, nil
}

// previousPeriod returns the month before now; January rolls back to
// December of the previous year.
func previousPeriod(now time.Time) (month, year int) {
	month = int(now.Month()) - 1
	year = now.Year()
	if month == 0 {
		month = 12
		year--
	}
	return month, year
}

// GenerateForPreviousMonth implements payroll.PayrollService.
func (s *PayrollServiceImpl) GenerateForPreviousMonth(ctx context.Context) (int, error) {
	month, year := previousPeriod(time.Now().UTC())

	slog.Info("generating scheduled payroll", "month", month, "year", year)

	return s.GenerateForAll(ctx, payroll.GenerateAllRequest{Month: month, Year: year})
}

// ListByPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListByPeriod(ctx context.Context, year, month int) ([]payroll.PayrollResponse, error) {
	records, err := s.PayrollRepository.ListByPeriod(ctx, year, month)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, payroll.ToResponse(record))
	}

	return responses, nil
}

// GetEmployeeHistory implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetEmployeeHistory(ctx context.Context, employeeID string) ([]payroll.PayrollResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.PayrollRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, payroll.ToResponse(record))
	}

	return responses, nil
}

// GetSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSummary(ctx context.Context, year, month int) (payroll.Summary, error) {
	return s.PayrollRepository.GetSummary(ctx, year, month)
}

// GetChart implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetChart(ctx context.Context, year int) ([]payroll.ChartPoint, error) {
	return s.PayrollRepository.GetChart(ctx, year)
}

// GetPayslipPDF implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayslipPDF(ctx context.Context, payrollID string) ([]byte, string, error) {
	record, err := s.PayrollRepository.GetByID(ctx, payrollID)
	if err != nil {
		return nil, "", err
	}

	pdf, err := s.renderer.RenderPayslip(record)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render payslip: %w", err)
	}

	code := record.EmployeeID
	if record.EmployeeCode != nil {
		code = *record.EmployeeCode
	}
	filename := fmt.Sprintf("payslip_%s_%d_%d.pdf", code, record.Month, record.Year)

	return pdf, filename, nil
}

// GetPeriodPDF implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPeriodPDF(ctx context.Context, year, month int) ([]byte, string, error) {
	records, err := s.PayrollRepository.ListByPeriod(ctx, year, month)
	if err != nil {
		return nil, "", err
	}

	if len(records) == 0 {
		return nil, "", payroll.ErrNoPayrollForPeriod
	}

	pdf, err := s.renderer.RenderPeriodSummary(year, month, records)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render payroll summary: %w", err)
	}

	filename := fmt.Sprintf("payroll_summary_%d_%d.pdf", month, year)

	return pdf, filename, nil
}

// EmailPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) EmailPayslip(ctx context.Context, payrollID string) error {
	record, err := s.PayrollRepository.GetByID(ctx, payrollID)
	if err != nil {
		return err
	}

	if record.EmployeeEmail == nil {
		return employee.ErrEmployeeNotFound
	}

	pdf, err := s.renderer.RenderPayslip(record)
	if err != nil {
		return fmt.Errorf("failed to render payslip: %w", err)
	}

	name := ""
	if record.EmployeeName != nil {
		name = *record.EmployeeName
	}

	if err := s.mailer.SendPayslip(*record.EmployeeEmail, name, record.Month, record.Year, pdf); err != nil {
		return fmt.Errorf("failed to email payslip: %w", err)
	}

	return nil
}
