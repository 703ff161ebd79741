package payroll

import (
	"context"
	"errors"

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

// Insert persists one issuance. The UNIQUE(employee_id, month, year)
// constraint is the idempotency guard: concurrent attempts for the same
// period race at the database and exactly one wins.
func (s *Store) Insert(ctx context.Context, record Record) (Record, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payrolls (employee_id, month, year, basic_salary, allowances, deductions, net_salary, paid_by)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id, paid_at
  `, record.EmployeeID, record.Month, record.Year,
		record.BasicSalary, record.Allowances, record.Deductions, record.NetSalary,
		nullIfEmpty(record.PaidBy)).Scan(&record.ID, &record.PaidAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Record{}, ErrDuplicateIssuance
		}
		return Record{}, err
	}
	return record, nil
}

func (s *Store) ForPeriod(ctx context.Context, employeeID string, month, year int) (Record, error) {
	var record Record
	var paidBy *string
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, month, year, basic_salary, allowances, deductions, net_salary, paid_at, paid_by
    FROM payrolls
    WHERE employee_id = $1 AND month = $2 AND year = $3
  `, employeeID, month, year).Scan(
		&record.ID, &record.EmployeeID, &record.Month, &record.Year,
		&record.BasicSalary, &record.Allowances, &record.Deductions, &record.NetSalary,
		&record.PaidAt, &paidBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrRecordNotFound
		}
		return Record{}, err
	}
	if paidBy != nil {
		record.PaidBy = *paidBy
	}
	return record, nil
}

func (s *Store) HistoryForEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	return s.queryRecords(ctx, `
    SELECT id, employee_id, month, year, basic_salary, allowances, deductions, net_salary, paid_at, paid_by
    FROM payrolls
    WHERE employee_id = $1
    ORDER BY year DESC, month DESC
  `, employeeID)
}

func (s *Store) RecordsForPeriod(ctx context.Context, month, year int) ([]Record, error) {
	return s.queryRecords(ctx, `
    SELECT id, employee_id, month, year, basic_salary, allowances, deductions, net_salary, paid_at, paid_by
    FROM payrolls
    WHERE month = $1 AND year = $2
    ORDER BY paid_at
  `, month, year)
}

func (s *Store) queryRecords(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		var paidBy *string
		if err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Month, &record.Year,
			&record.BasicSalary, &record.Allowances, &record.Deductions, &record.NetSalary,
			&record.PaidAt, &paidBy); err != nil {
			return nil, err
		}
		if paidBy != nil {
			record.PaidBy = *paidBy
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
