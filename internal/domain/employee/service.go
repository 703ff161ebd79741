package employee

import (
	"context"
	"log/slog"
	"strings"

	"ems/internal/domain/notify"
)

type Service struct {
	store       *Store
	notifier    notify.Notifier
	companyName string
	portalURL   string
}

func NewService(store *Store, notifier notify.Notifier, companyName, portalURL string) *Service {
	return &Service{store: store, notifier: notifier, companyName: companyName, portalURL: portalURL}
}

func (s *Service) Create(ctx context.Context, e Employee) (Employee, error) {
	e.Name = strings.TrimSpace(e.Name)
	e.Email = strings.TrimSpace(e.Email)
	if e.Name == "" || e.Email == "" {
		return Employee{}, ErrInvalidInput
	}
	if e.Designation == "" {
		e.Designation = DefaultDesignation
	}
	if e.EmployeeType == "" {
		e.EmployeeType = TypeFullTime
	}
	if !ValidType(e.EmployeeType) {
		return Employee{}, ErrInvalidInput
	}
	if e.WorkHours <= 0 {
		e.WorkHours = DefaultWorkHours
	}

	created, err := s.store.Insert(ctx, e)
	if err != nil {
		return Employee{}, err
	}

	// Welcome mail is best-effort; the employee record is already durable.
	msg := notify.WelcomeMessage(s.companyName, created.Name, s.portalURL)
	if err := s.notifier.Send(ctx, created.Email, msg.Subject, msg.TextBody, msg.HTMLBody); err != nil {
		slog.Warn("welcome email failed", "employee", created.ID, "err", err)
	}
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Employee, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) UpdateSalary(ctx context.Context, id string, salary float64) (Employee, error) {
	if salary <= 0 {
		return Employee{}, ErrInvalidSalary
	}
	if err := s.store.UpdateSalary(ctx, id, salary); err != nil {
		return Employee{}, err
	}
	return s.store.Get(ctx, id)
}

func (s *Service) UpdateWorkHours(ctx context.Context, id string, workHours float64) (Employee, error) {
	if workHours <= 0 || workHours > 24 {
		return Employee{}, ErrInvalidHours
	}
	if err := s.store.UpdateWorkHours(ctx, id, workHours); err != nil {
		return Employee{}, err
	}
	return s.store.Get(ctx, id)
}

func (s *Service) Promote(ctx context.Context, id, designation, promotedBy, remarks string) (Employee, error) {
	designation = strings.TrimSpace(designation)
	if designation == "" {
		return Employee{}, ErrInvalidInput
	}
	if err := s.store.Promote(ctx, id, designation, promotedBy, remarks); err != nil {
		return Employee{}, err
	}
	return s.store.Get(ctx, id)
}

func (s *Service) Terminate(ctx context.Context, id, reason string) (Employee, error) {
	if strings.TrimSpace(reason) == "" {
		return Employee{}, ErrInvalidInput
	}
	if err := s.store.Terminate(ctx, id, reason); err != nil {
		return Employee{}, err
	}
	return s.store.Get(ctx, id)
}
