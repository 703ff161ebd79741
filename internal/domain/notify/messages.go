package notify

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders a monetary value with thousands separators,
// e.g. 53000 -> "53,000".
func FormatAmount(amount float64) string {
	if amount == float64(int64(amount)) {
		return printer.Sprintf("%d", int64(amount))
	}
	return printer.Sprintf("%.2f", amount)
}

func MonthYear(month, year int) string {
	return fmt.Sprintf("%s %d", time.Month(month).String(), year)
}

// WelcomeMessage greets a newly created employee with portal details.
func WelcomeMessage(companyName, employeeName, portalURL string) Message {
	subject := "Welcome to " + companyName
	text := fmt.Sprintf(
		"Dear %s,\n\nCongratulations and welcome to the team! We are thrilled to have you join us at %s.\n\nYour employee portal is available at %s. The HR department will share your access details separately.\n\nIf you have any questions, please reach out to HR or your manager.\n\nBest regards,\n%s",
		employeeName, companyName, portalURL, companyName)
	html := fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif; color: #333;">
<div style="max-width: 600px; margin: 0 auto; border: 1px solid #ddd; border-radius: 8px;">
  <div style="background-color: #0d47a1; color: white; padding: 20px; text-align: center;"><h1 style="margin: 0; font-size: 24px;">Welcome to %s!</h1></div>
  <div style="padding: 30px;">
    <p>Dear %s,</p>
    <p>Congratulations and welcome to the team! We are thrilled to have you join us at <strong>%s</strong>.</p>
    <p>Your employee portal is available at <a href="%s">%s</a>. The HR department will share your access details separately.</p>
    <p style="color: #555;">If you have any questions, please reach out to HR or your manager.</p>
    <p>Best regards,<br>%s</p>
  </div>
</div>
</body></html>`,
		companyName, employeeName, companyName, portalURL, portalURL, companyName)
	return Message{Subject: subject, TextBody: text, HTMLBody: html}
}

// SalaryMessage summarizes an issued payroll breakdown for the employee.
// The detailed slip PDF stays behind the portal; the mail carries totals only.
func SalaryMessage(companyName, employeeName, portalURL string, month, year int, basicSalary, allowances, deductions, netSalary float64) Message {
	period := MonthYear(month, year)
	subject := fmt.Sprintf("Salary Slip - %s", period)
	text := fmt.Sprintf(
		"Dear %s,\n\nYour salary slip for %s has been generated. Net Pay: Rs. %s. Please log in to the portal to download the PDF.\n\nBest regards,\n%s",
		employeeName, period, FormatAmount(netSalary), companyName)
	html := fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif; color: #333;">
<div style="max-width: 600px; margin: 0 auto; border: 1px solid #ddd; border-radius: 8px;">
  <div style="background-color: #0d47a1; color: white; padding: 20px; text-align: center;"><h1 style="margin: 0; font-size: 22px;">%s</h1></div>
  <div style="padding: 30px;">
    <p>Dear %s,</p>
    <p>Your salary slip for <strong>%s</strong> has been generated.</p>
    <table style="width: 100%%; border-collapse: collapse; margin: 20px 0; font-size: 14px;">
      <tr><th style="text-align: left; padding: 12px; background-color: #f5f5f5;">Description</th><th style="text-align: right; padding: 12px; background-color: #f5f5f5;">Amount (INR)</th></tr>
      <tr><td style="padding: 12px;">Basic Salary</td><td style="padding: 12px; text-align: right;">Rs. %s</td></tr>
      <tr><td style="padding: 12px;">Allowances</td><td style="padding: 12px; text-align: right;">Rs. %s</td></tr>
      <tr><td style="padding: 12px;">Deductions</td><td style="padding: 12px; text-align: right; color: #d32f2f;">- Rs. %s</td></tr>
      <tr style="background-color: #e3f2fd; font-weight: bold;"><td style="padding: 12px;">Net Salary Payable</td><td style="padding: 12px; text-align: right; color: #0d47a1;">Rs. %s</td></tr>
    </table>
    <p>You can download the detailed salary slip PDF from your <a href="%s">Employee Portal</a>.</p>
    <p>Best regards,<br>%s</p>
  </div>
</div>
</body></html>`,
		companyName, employeeName, period,
		FormatAmount(basicSalary), FormatAmount(allowances), FormatAmount(deductions), FormatAmount(netSalary),
		portalURL, companyName)
	return Message{Subject: subject, TextBody: text, HTMLBody: html}
}
