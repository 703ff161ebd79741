package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const uniqueViolation = "23505"

func (s *Store) InsertClockIn(ctx context.Context, employeeID string, at time.Time) (TimeEntry, error) {
	entry := TimeEntry{EmployeeID: employeeID, LoginTime: at}
	err := s.DB.QueryRow(ctx, `
    INSERT INTO time_entries (employee_id, entry_date, login_time)
    VALUES ($1, $2::date, $2)
    RETURNING id, entry_date
  `, employeeID, at).Scan(&entry.ID, &entry.Date)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return TimeEntry{}, ErrAlreadyClockedIn
		}
		return TimeEntry{}, err
	}
	return entry, nil
}

func (s *Store) EntryForDay(ctx context.Context, employeeID string, day time.Time) (TimeEntry, error) {
	var entry TimeEntry
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, entry_date, login_time, logout_time, hours_worked
    FROM time_entries
    WHERE employee_id = $1 AND entry_date = $2::date
  `, employeeID, day).Scan(&entry.ID, &entry.EmployeeID, &entry.Date, &entry.LoginTime, &entry.LogoutTime, &entry.HoursWorked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TimeEntry{}, ErrNotClockedIn
		}
		return TimeEntry{}, err
	}
	return entry, nil
}

func (s *Store) CompleteClockOut(ctx context.Context, entryID string, at time.Time, hoursWorked float64) (TimeEntry, error) {
	var entry TimeEntry
	err := s.DB.QueryRow(ctx, `
    UPDATE time_entries
    SET logout_time = $1, hours_worked = $2
    WHERE id = $3 AND logout_time IS NULL
    RETURNING id, employee_id, entry_date, login_time, logout_time, hours_worked
  `, at, hoursWorked, entryID).Scan(&entry.ID, &entry.EmployeeID, &entry.Date, &entry.LoginTime, &entry.LogoutTime, &entry.HoursWorked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TimeEntry{}, ErrAlreadyClockedOut
		}
		return TimeEntry{}, err
	}
	return entry, nil
}

func (s *Store) EntriesForEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]TimeEntry, error) {
	return s.queryEntries(ctx, `
    SELECT id, employee_id, entry_date, login_time, logout_time, hours_worked
    FROM time_entries
    WHERE employee_id = $1
      AND EXTRACT(MONTH FROM entry_date) = $2
      AND EXTRACT(YEAR FROM entry_date) = $3
    ORDER BY entry_date
  `, employeeID, month, year)
}

func (s *Store) EntriesForMonth(ctx context.Context, month, year int) ([]TimeEntry, error) {
	return s.queryEntries(ctx, `
    SELECT id, employee_id, entry_date, login_time, logout_time, hours_worked
    FROM time_entries
    WHERE EXTRACT(MONTH FROM entry_date) = $1
      AND EXTRACT(YEAR FROM entry_date) = $2
    ORDER BY entry_date
  `, month, year)
}

func (s *Store) EntriesForDay(ctx context.Context, day time.Time) ([]TimeEntry, error) {
	return s.queryEntries(ctx, `
    SELECT id, employee_id, entry_date, login_time, logout_time, hours_worked
    FROM time_entries
    WHERE entry_date = $1::date
  `, day)
}

func (s *Store) queryEntries(ctx context.Context, query string, args ...any) ([]TimeEntry, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []TimeEntry
	for rows.Next() {
		var entry TimeEntry
		if err := rows.Scan(&entry.ID, &entry.EmployeeID, &entry.Date, &entry.LoginTime, &entry.LogoutTime, &entry.HoursWorked); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) Holidays(ctx context.Context) ([]Holiday, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, holiday_date
    FROM holidays
    ORDER BY holiday_date
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []Holiday
	for rows.Next() {
		var h Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}
