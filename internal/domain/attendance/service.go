package attendance

import (
	"context"
	"math"
	"time"

	"ems/internal/domain/employee"
)

type Service struct {
	store     *Store
	employees *employee.Store
	restDays  []time.Weekday
	now       func() time.Time
}

func NewService(store *Store, employees *employee.Store, restDays []time.Weekday) *Service {
	return &Service{store: store, employees: employees, restDays: restDays, now: time.Now}
}

func (s *Service) ClockIn(ctx context.Context, employeeID string) (TimeEntry, error) {
	emp, err := s.employees.Get(ctx, employeeID)
	if err != nil {
		return TimeEntry{}, err
	}
	if emp.Status != employee.StatusActive {
		return TimeEntry{}, employee.ErrNotActive
	}
	return s.store.InsertClockIn(ctx, employeeID, s.now())
}

func (s *Service) ClockOut(ctx context.Context, employeeID string) (TimeEntry, error) {
	now := s.now()
	entry, err := s.store.EntryForDay(ctx, employeeID, now)
	if err != nil {
		return TimeEntry{}, err
	}
	if entry.LogoutTime != nil {
		return TimeEntry{}, ErrAlreadyClockedOut
	}
	hours := roundHours(now.Sub(entry.LoginTime).Hours())
	return s.store.CompleteClockOut(ctx, entry.ID, now, hours)
}

func (s *Service) Entries(ctx context.Context, employeeID string, month, year int) ([]TimeEntry, error) {
	if _, err := s.employees.Get(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.store.EntriesForEmployeeMonth(ctx, employeeID, month, year)
}

// MonthlyAttendance reconciles one employee's month into per-day rows.
// Derived on every call; nothing is cached or persisted.
func (s *Service) MonthlyAttendance(ctx context.Context, employeeID string, month, year int) ([]DayRow, error) {
	if _, err := s.employees.Get(ctx, employeeID); err != nil {
		return nil, err
	}
	entries, err := s.store.EntriesForEmployeeMonth(ctx, employeeID, month, year)
	if err != nil {
		return nil, err
	}
	holidays, err := s.store.Holidays(ctx)
	if err != nil {
		return nil, err
	}
	return Reconcile(month, year, entries, NewCalendar(s.restDays, holidays), s.now()), nil
}

// Stats aggregates today's headcount snapshot plus the requested month.
func (s *Service) Stats(ctx context.Context, month, year int) (Stats, error) {
	totalActive, err := s.employees.ActiveCount(ctx)
	if err != nil {
		return Stats{}, err
	}
	todaysEntries, err := s.store.EntriesForDay(ctx, s.now())
	if err != nil {
		return Stats{}, err
	}
	monthEntries, err := s.store.EntriesForMonth(ctx, month, year)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Daily:         DailySnapshot(totalActive, todaysEntries),
		Monthly:       MonthlySnapshot(monthEntries),
		EmployeeStats: EmployeeMonthlySnapshot(monthEntries),
	}, nil
}

func (s *Service) Holidays(ctx context.Context) ([]Holiday, error) {
	return s.store.Holidays(ctx)
}

func roundHours(hours float64) float64 {
	if hours < 0 {
		return 0
	}
	return math.Round(hours*100) / 100
}
