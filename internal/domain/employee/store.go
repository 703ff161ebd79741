package employee

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

func (s *Store) Insert(ctx context.Context, e Employee) (Employee, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (name, email, designation, employee_type, salary, work_hours)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id, status, created_at
  `, e.Name, e.Email, e.Designation, e.EmployeeType, e.Salary, e.WorkHours).Scan(&e.ID, &e.Status, &e.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Employee{}, ErrEmailExists
		}
		return Employee{}, err
	}
	return e, nil
}

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, email, designation, employee_type, status, COALESCE(termination_reason, ''), salary, work_hours, created_at
    FROM employees
    ORDER BY created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Designation, &e.EmployeeType, &e.Status, &e.TerminationReason, &e.Salary, &e.WorkHours, &e.CreatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Employee, error) {
	var e Employee
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, email, designation, employee_type, status, COALESCE(termination_reason, ''), salary, work_hours, created_at
    FROM employees
    WHERE id = $1
  `, id).Scan(&e.ID, &e.Name, &e.Email, &e.Designation, &e.EmployeeType, &e.Status, &e.TerminationReason, &e.Salary, &e.WorkHours, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Employee{}, ErrNotFound
		}
		return Employee{}, err
	}

	promotions, err := s.promotions(ctx, id)
	if err != nil {
		return Employee{}, err
	}
	e.PromotionHistory = promotions
	return e, nil
}

func (s *Store) promotions(ctx context.Context, employeeID string) ([]Promotion, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT designation, COALESCE(promoted_by::text, ''), COALESCE(remarks, ''), created_at
    FROM promotions
    WHERE employee_id = $1
    ORDER BY created_at
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promotions []Promotion
	for rows.Next() {
		var p Promotion
		if err := rows.Scan(&p.Designation, &p.PromotedBy, &p.Remarks, &p.Date); err != nil {
			return nil, err
		}
		promotions = append(promotions, p)
	}
	return promotions, rows.Err()
}

func (s *Store) UpdateSalary(ctx context.Context, id string, salary float64) error {
	return s.updateOne(ctx, "UPDATE employees SET salary = $1 WHERE id = $2", salary, id)
}

func (s *Store) UpdateWorkHours(ctx context.Context, id string, workHours float64) error {
	return s.updateOne(ctx, "UPDATE employees SET work_hours = $1 WHERE id = $2", workHours, id)
}

func (s *Store) Terminate(ctx context.Context, id, reason string) error {
	return s.updateOne(ctx, `
    UPDATE employees SET status = $1, termination_reason = $2 WHERE id = $3
  `, StatusTerminated, reason, id)
}

func (s *Store) Promote(ctx context.Context, id, designation, promotedBy, remarks string) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, "UPDATE employees SET designation = $1 WHERE id = $2", designation, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, `
    INSERT INTO promotions (employee_id, designation, promoted_by, remarks)
    VALUES ($1,$2,$3,$4)
  `, id, designation, nullIfEmpty(promotedBy), remarks); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) ActiveCount(ctx context.Context) (int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE status = $1", StatusActive).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) updateOne(ctx context.Context, query string, args ...any) error {
	tag, err := s.DB.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
