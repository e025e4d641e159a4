package payslip

import (
	"bytes"
	"fmt"
	"time"

	"github.com/cloudhrms/hrms-backend-go/internal/config"
	"github.com/cloudhrms/hrms-backend-go/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// Generator renders payroll records as PDF documents. The company block and
// currency symbol come from configuration so the layout carries no
// hard-coded identity.
type Generator struct {
	company  config.CompanyConfig
	currency string
}

func NewGenerator(company config.CompanyConfig, payrollCfg config.PayrollConfig) *Generator {
	return &Generator{
		company:  company,
		currency: payrollCfg.CurrencySymbol,
	}
}

func (g *Generator) money(d decimal.Decimal) string {
	return fmt.Sprintf("%s %s", g.currency, d.StringFixed(2))
}

func (g *Generator) header(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, g.company.Name, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, g.company.Address, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, g.company.Contact, "", 1, "C", false, 0, "")

	pdf.Ln(3)
	x, y := pdf.GetXY()
	pdf.Line(10, y, 200, y)
	pdf.SetXY(x, y+3)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)
}

func labelValueRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(60, 8, label, "1", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(130, 8, value, "1", 1, "L", false, 0, "")
}

// RenderPayslip produces the single-employee payslip document.
func (g *Generator) RenderPayslip(p payroll.Payroll) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	period := fmt.Sprintf("%s %d", time.Month(p.Month).String(), p.Year)
	g.header(pdf, "PAYSLIP for "+period)

	code := strOr(p.EmployeeCode, p.EmployeeID)
	name := strOr(p.EmployeeName, "-")
	department := strOr(p.EmployeeDepartment, "-")
	role := strOr(p.EmployeeRole, "-")

	dateJoined := "-"
	if p.EmployeeDateJoined != nil {
		dateJoined = p.EmployeeDateJoined.Format("2006-01-02")
	}

	labelValueRow(pdf, "Employee ID", code)
	labelValueRow(pdf, "Name", name)
	labelValueRow(pdf, "Department", department)
	labelValueRow(pdf, "Designation", role)
	labelValueRow(pdf, "Date of Joining", dateJoined)
	labelValueRow(pdf, "Generated On", p.GeneratedOn.UTC().Format("2006-01-02"))

	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(120, 8, "Earnings / Attendance", "1", 0, "L", true, 0, "")
	pdf.CellFormat(70, 8, "Amount / Days", "1", 1, "R", true, 0, "")

	salaryRow := func(label, value string) {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(120, 8, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 8, value, "1", 1, "R", false, 0, "")
	}

	salaryRow("Basic Salary", g.money(p.BasicSalary))
	salaryRow("Working Days", fmt.Sprintf("%d", p.WorkingDays))
	salaryRow("Present Days", fmt.Sprintf("%d", p.PresentDays))
	salaryRow("Absent Days", fmt.Sprintf("%d", p.AbsentDays))
	salaryRow("Loss of Pay Days", fmt.Sprintf("%d", p.LOPDays))
	salaryRow("Overtime Hours", p.OvertimeHours.StringFixed(2))
	salaryRow("Overtime Pay", g.money(p.OvertimePay))
	salaryRow("Gross Salary", g.money(p.GrossSalary))

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(210, 230, 210)
	pdf.CellFormat(120, 9, "Net Salary", "1", 0, "L", true, 0, "")
	pdf.CellFormat(70, 9, g.money(p.NetSalary), "1", 1, "R", true, 0, "")

	pdf.Ln(14)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 8, "_______________________", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 8, "_______________________", "", 1, "R", false, 0, "")
	pdf.CellFormat(95, 6, "Employer Signature", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, "Employee Signature", "", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 5, "This is a system generated payslip and does not require a signature.", "", 1, "C", false, 0, "")

	return output(pdf)
}

// RenderPeriodSummary produces one table over every record of the period.
func (g *Generator) RenderPeriodSummary(year, month int, records []payroll.Payroll) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	period := fmt.Sprintf("%s %d", time.Month(month).String(), year)
	g.header(pdf, "Payroll Summary - "+period)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(30, 8, "Emp ID", "1", 0, "L", true, 0, "")
	pdf.CellFormat(80, 8, "Name", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, "Gross Salary", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Net Salary", "1", 1, "R", true, 0, "")

	totalGross := decimal.Zero
	totalNet := decimal.Zero

	pdf.SetFont("Arial", "", 10)
	for _, p := range records {
		pdf.CellFormat(30, 8, strOr(p.EmployeeCode, p.EmployeeID), "1", 0, "L", false, 0, "")
		pdf.CellFormat(80, 8, strOr(p.EmployeeName, "-"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, g.money(p.GrossSalary), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, g.money(p.NetSalary), "1", 1, "R", false, 0, "")

		totalGross = totalGross.Add(p.GrossSalary)
		totalNet = totalNet.Add(p.NetSalary)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(110, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, g.money(totalGross), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, g.money(totalNet), "1", 1, "R", false, 0, "")

	return output(pdf)
}

func strOr(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}
