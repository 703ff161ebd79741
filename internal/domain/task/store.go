package task

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

func (s *Store) Insert(ctx context.Context, t Task) (Task, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO tasks (title, description, assigned_to, assigned_by, status, due_date)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, created_at
  `, t.Title, t.Description, t.AssignedTo, nullIfEmpty(t.AssignedBy), t.Status, t.DueDate).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *Store) List(ctx context.Context) ([]Task, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, title, description, assigned_to, assigned_by, status, due_date, created_at
    FROM tasks
    ORDER BY created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		var description, assignedBy *string
		if err := rows.Scan(&t.ID, &t.Title, &description, &t.AssignedTo, &assignedBy, &t.Status, &t.DueDate, &t.CreatedAt); err != nil {
			return nil, err
		}
		if description != nil {
			t.Description = *description
		}
		if assignedBy != nil {
			t.AssignedBy = *assignedBy
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) UpdateStatus(ctx context.Context, taskID, status string) (Task, error) {
	var t Task
	var description, assignedBy *string
	err := s.DB.QueryRow(ctx, `
    UPDATE tasks
    SET status = $1
    WHERE id = $2
    RETURNING id, title, description, assigned_to, assigned_by, status, due_date, created_at
  `, status, taskID).Scan(&t.ID, &t.Title, &description, &t.AssignedTo, &assignedBy, &t.Status, &t.DueDate, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, err
	}
	if description != nil {
		t.Description = *description
	}
	if assignedBy != nil {
		t.AssignedBy = *assignedBy
	}
	return t, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
