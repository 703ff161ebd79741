package payroll

import (
	"context"
	"log/slog"
	"strings"

	"ems/internal/domain/employee"
	"ems/internal/domain/notify"
)

type Service struct {
	store       *Store
	employees   *employee.Store
	notifier    notify.Notifier
	renderer    *Renderer
	companyName string
	portalURL   string
}

func NewService(store *Store, employees *employee.Store, notifier notify.Notifier, renderer *Renderer, companyName, portalURL string) *Service {
	return &Service{
		store:       store,
		employees:   employees,
		notifier:    notifier,
		renderer:    renderer,
		companyName: companyName,
		portalURL:   portalURL,
	}
}

// Issue pays one employee for one period. The net amount is computed here,
// never taken from the caller, and the insert is the single idempotency
// point: a second issue for the same period fails with ErrDuplicateIssuance
// no matter how the attempts interleave.
func (s *Service) Issue(ctx context.Context, req IssueRequest) (Record, error) {
	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	if req.EmployeeID == "" {
		return Record{}, employee.ErrInvalidInput
	}
	if req.Month < 1 || req.Month > 12 || req.Year < 1900 || req.Year > 9999 {
		return Record{}, ErrInvalidPeriod
	}
	if req.BasicSalary <= 0 {
		return Record{}, ErrInvalidAmount
	}
	if req.Allowances < 0 || req.Deductions < 0 {
		return Record{}, ErrNegativeAmount
	}

	emp, err := s.employees.Get(ctx, req.EmployeeID)
	if err != nil {
		return Record{}, err
	}
	if emp.Status != employee.StatusActive {
		return Record{}, employee.ErrNotActive
	}

	record, err := s.store.Insert(ctx, Record{
		EmployeeID:  req.EmployeeID,
		Month:       req.Month,
		Year:        req.Year,
		BasicSalary: req.BasicSalary,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
		NetSalary:   ComputeNet(req.BasicSalary, req.Allowances, req.Deductions),
		PaidBy:      req.PaidBy,
	})
	if err != nil {
		return Record{}, err
	}

	// The record is committed; a failed mail must not undo the issuance.
	msg := notify.SalaryMessage(s.companyName, emp.Name, s.portalURL,
		record.Month, record.Year,
		record.BasicSalary, record.Allowances, record.Deductions, record.NetSalary)
	if err := s.notifier.Send(ctx, emp.Email, msg.Subject, msg.TextBody, msg.HTMLBody); err != nil {
		slog.Warn("salary email failed", "employeeId", emp.ID, "error", err)
	}

	return record, nil
}

// StatusForPeriod lists the period's issuances. An unpaid period is an
// empty list, not an error.
func (s *Service) StatusForPeriod(ctx context.Context, month, year int) (Status, error) {
	records, err := s.store.RecordsForPeriod(ctx, month, year)
	if err != nil {
		return Status{}, err
	}
	if records == nil {
		records = []Record{}
	}
	return Status{Month: month, Year: year, PaidCount: len(records), Records: records}, nil
}

func (s *Service) History(ctx context.Context, employeeID string) ([]Record, error) {
	if _, err := s.employees.Get(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.store.HistoryForEmployee(ctx, employeeID)
}

// Slip renders the salary document for an issued period.
func (s *Service) Slip(ctx context.Context, employeeID string, month, year int) ([]byte, error) {
	emp, err := s.employees.Get(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	record, err := s.store.ForPeriod(ctx, employeeID, month, year)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(ctx, SlipData{
		CompanyName: s.companyName,
		Employee:    emp,
		Record:      record,
	})
}
