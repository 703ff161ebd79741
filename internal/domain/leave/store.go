package leave

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Insert(ctx context.Context, req Request) (Request, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leaves (employee_id, leave_type, start_date, end_date, days, reason, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, created_at
  `, req.EmployeeID, req.LeaveType, req.StartDate, req.EndDate, req.Days, req.Reason, req.Status).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return Request{}, err
	}
	return req, nil
}

func (s *Store) List(ctx context.Context) ([]Request, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, leave_type, start_date, end_date, days, reason, status, decided_by, created_at
    FROM leaves
    ORDER BY created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []Request
	for rows.Next() {
		var req Request
		var decidedBy *string
		if err := rows.Scan(&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
			&req.Days, &req.Reason, &req.Status, &decidedBy, &req.CreatedAt); err != nil {
			return nil, err
		}
		if decidedBy != nil {
			req.DecidedBy = *decidedBy
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// Decide flips a pending request; an already-decided one is left untouched.
func (s *Store) Decide(ctx context.Context, requestID, status, decidedBy string) (Request, error) {
	var req Request
	var decider *string
	err := s.DB.QueryRow(ctx, `
    UPDATE leaves
    SET status = $1, decided_by = $2
    WHERE id = $3 AND status = $4
    RETURNING id, employee_id, leave_type, start_date, end_date, days, reason, status, decided_by, created_at
  `, status, nullIfEmpty(decidedBy), requestID, StatusPending).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
		&req.Days, &req.Reason, &req.Status, &decider, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Request{}, s.decideFailure(ctx, requestID)
		}
		return Request{}, err
	}
	if decider != nil {
		req.DecidedBy = *decider
	}
	return req, nil
}

// decideFailure distinguishes a missing request from one already decided.
func (s *Store) decideFailure(ctx context.Context, requestID string) error {
	var exists bool
	if err := s.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM leaves WHERE id = $1)`, requestID).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return ErrAlreadyDecided
	}
	return ErrNotFound
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
