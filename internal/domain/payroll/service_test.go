package payroll

import (
	"context"
	"errors"
	"testing"

	"ems/internal/domain/employee"
)

func TestIssueValidation(t *testing.T) {
	// Validation happens before any store access.
	svc := NewService(nil, nil, nil, nil, "", "")

	cases := []struct {
		name string
		req  IssueRequest
		want error
	}{
		{"missing employee", IssueRequest{Month: 1, Year: 2026, BasicSalary: 1000}, employee.ErrInvalidInput},
		{"month too low", IssueRequest{EmployeeID: "e", Month: 0, Year: 2026, BasicSalary: 1000}, ErrInvalidPeriod},
		{"month too high", IssueRequest{EmployeeID: "e", Month: 13, Year: 2026, BasicSalary: 1000}, ErrInvalidPeriod},
		{"year out of range", IssueRequest{EmployeeID: "e", Month: 6, Year: 123, BasicSalary: 1000}, ErrInvalidPeriod},
		{"zero basic", IssueRequest{EmployeeID: "e", Month: 6, Year: 2026, BasicSalary: 0}, ErrInvalidAmount},
		{"negative allowances", IssueRequest{EmployeeID: "e", Month: 6, Year: 2026, BasicSalary: 1000, Allowances: -1}, ErrNegativeAmount},
		{"negative deductions", IssueRequest{EmployeeID: "e", Month: 6, Year: 2026, BasicSalary: 1000, Deductions: -1}, ErrNegativeAmount},
	}
	for _, c := range cases {
		if _, err := svc.Issue(context.Background(), c.req); !errors.Is(err, c.want) {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, err)
		}
	}
}
