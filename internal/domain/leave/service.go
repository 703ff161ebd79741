package leave

import (
	"context"
	"strings"
	"time"

	"ems/internal/domain/employee"
)

type Service struct {
	store     *Store
	employees *employee.Store
}

func NewService(store *Store, employees *employee.Store) *Service {
	return &Service{store: store, employees: employees}
}

func (s *Service) Request(ctx context.Context, employeeID, leaveType string, start, end time.Time, reason string) (Request, error) {
	leaveType = strings.TrimSpace(leaveType)
	if employeeID == "" || leaveType == "" || start.IsZero() || end.IsZero() {
		return Request{}, ErrInvalidInput
	}
	if _, err := s.employees.Get(ctx, employeeID); err != nil {
		return Request{}, err
	}
	days, err := CalculateDays(start, end)
	if err != nil {
		return Request{}, err
	}
	return s.store.Insert(ctx, Request{
		EmployeeID: employeeID,
		LeaveType:  leaveType,
		StartDate:  start,
		EndDate:    end,
		Days:       days,
		Reason:     strings.TrimSpace(reason),
		Status:     StatusPending,
	})
}

func (s *Service) List(ctx context.Context) ([]Request, error) {
	return s.store.List(ctx)
}

func (s *Service) Decide(ctx context.Context, requestID, decision, decidedBy string) (Request, error) {
	if decision != StatusApproved && decision != StatusDeclined {
		return Request{}, ErrInvalidDecision
	}
	return s.store.Decide(ctx, requestID, decision, decidedBy)
}
