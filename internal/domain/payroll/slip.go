package payroll

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"ems/internal/domain/employee"
	"ems/internal/domain/notify"
)

// SlipData is everything the salary document needs; rendering itself never
// touches the database.
type SlipData struct {
	CompanyName string
	Employee    employee.Employee
	Record      Record
}

// Core fonts are cp1252 and cannot render the rupee sign, so amounts carry
// the "Rs." prefix throughout.
const rupee = "Rs. "

// RenderSlip lays out one A4 salary slip: letterhead, identity block,
// earnings/deductions table, then the net pay callout with the amount in
// words.
func RenderSlip(data SlipData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 30

	// Letterhead
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentWidth, 10, strings.ToUpper(data.CompanyName), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentWidth/2, 5, "GSTIN: --------", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(248, 248, 248)
	pdf.CellFormat(contentWidth/2, 8, fmt.Sprintf("Payslip for %s", notify.MonthYear(data.Record.Month, data.Record.Year)), "1", 1, "C", true, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentWidth/2, 5, "CIN: -----------", "", 1, "L", false, 0, "")

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageWidth-15, pdf.GetY())
	pdf.Ln(6)

	// Identity block, two columns
	identity := [][2]string{
		{"Employee Name:", data.Employee.Name},
		{"Employee ID:", shortID(data.Employee.ID)},
		{"Designation:", orNA(data.Employee.Designation)},
		{"Employee Type:", orNA(data.Employee.EmployeeType)},
		{"Payment Date:", data.Record.PaidAt.Format("02/01/2006")},
		{"Bank Account:", "XXXX-XXXX-XXXX"},
	}
	half := contentWidth / 2
	for i := 0; i < len(identity); i += 2 {
		writeDetail(pdf, half-5, identity[i][0], identity[i][1])
		pdf.SetX(15 + half + 5)
		writeDetail(pdf, half-5, identity[i+1][0], identity[i+1][1])
		pdf.Ln(7)
	}
	pdf.Ln(4)

	// Earnings and deductions side by side
	labelWidth := contentWidth * 0.35
	amountWidth := contentWidth * 0.15

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(labelWidth, 8, "Earnings", "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountWidth, 8, "Amount", "1", 0, "R", true, 0, "")
	pdf.CellFormat(labelWidth, 8, "Deductions", "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountWidth, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	writeBreakdownRow(pdf, labelWidth, amountWidth,
		"Basic Salary", data.Record.BasicSalary,
		"Tax / Provident Fund", data.Record.Deductions)
	writeBreakdownRow(pdf, labelWidth, amountWidth,
		"Allowances (HRA, etc.)", data.Record.Allowances,
		"Other Deductions", 0)

	pdf.SetFont("Helvetica", "B", 10)
	writeBreakdownRow(pdf, labelWidth, amountWidth,
		"Total Earnings", data.Record.BasicSalary+data.Record.Allowances,
		"Total Deductions", data.Record.Deductions)
	pdf.Ln(10)

	// Net pay callout
	pdf.SetLineWidth(0.6)
	startY := pdf.GetY()
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(15 + contentWidth - 90)
	pdf.CellFormat(90, 7, "Net Salary Payable:", "LTR", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetX(15 + contentWidth - 90)
	pdf.CellFormat(90, 10, rupee+notify.FormatAmount(data.Record.NetSalary), "LR", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetX(15 + contentWidth - 90)
	pdf.CellFormat(90, 7, fmt.Sprintf("(In words: %s)", amountInWords(data.Record.NetSalary)), "LBR", 1, "L", false, 0, "")
	pdf.SetLineWidth(0.2)

	// Signature block alongside the callout
	pdf.SetY(startY + 10)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(60, 6, "Krishna Kant Jha", "B", 1, "C", false, 0, "")
	pdf.CellFormat(60, 6, "Managing Director", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeDetail(pdf *gofpdf.Fpdf, width float64, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(width*0.45, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(width*0.55, 6, value, "", 0, "L", false, 0, "")
}

func writeBreakdownRow(pdf *gofpdf.Fpdf, labelWidth, amountWidth float64, earning string, earningAmount float64, deduction string, deductionAmount float64) {
	pdf.CellFormat(labelWidth, 8, earning, "1", 0, "L", false, 0, "")
	pdf.CellFormat(amountWidth, 8, rupee+notify.FormatAmount(earningAmount), "1", 0, "R", false, 0, "")
	pdf.CellFormat(labelWidth, 8, deduction, "1", 0, "L", false, 0, "")
	pdf.CellFormat(amountWidth, 8, rupee+notify.FormatAmount(deductionAmount), "1", 1, "R", false, 0, "")
}

// amountInWords follows the slip convention of spelling the currency around
// the grouped figure, e.g. "Rupees 53,000 Only".
func amountInWords(amount float64) string {
	return "Rupees " + notify.FormatAmount(amount) + " Only"
}

// shortID renders the first segment of a UUID uppercased for display.
func shortID(id string) string {
	cleaned := strings.ReplaceAll(id, "-", "")
	if len(cleaned) > 8 {
		cleaned = cleaned[:8]
	}
	return strings.ToUpper(cleaned)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
