package payroll

import "time"

// Record is one issued payroll, keyed by (employee, month, year). Issuance is
// at-most-once per key; the table enforces this with a unique constraint.
type Record struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	BasicSalary float64   `json:"basicSalary"`
	Allowances  float64   `json:"allowances"`
	Deductions  float64   `json:"deductions"`
	NetSalary   float64   `json:"netSalary"`
	PaidAt      time.Time `json:"paidAt"`
	PaidBy      string    `json:"paidBy,omitempty"`
}

// IssueRequest carries the caller-supplied breakdown. The net amount is
// always computed server side; any client-sent figure is ignored.
type IssueRequest struct {
	EmployeeID  string
	Month       int
	Year        int
	BasicSalary float64
	Allowances  float64
	Deductions  float64
	PaidBy      string
}

// Status summarizes a period's issuances across all employees.
type Status struct {
	Month     int      `json:"month"`
	Year      int      `json:"year"`
	PaidCount int      `json:"paidCount"`
	Records   []Record `json:"records"`
}
