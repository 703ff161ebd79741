package task

import (
	"context"
	"log/slog"
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

// Assign fans a task out to one or more employees, one record each.
// A failure for one assignee is recorded and the rest still get theirs.
func (s *Service) Assign(ctx context.Context, title, description string, assignees []string, assignedBy string, dueDate *time.Time) (AssignResult, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(assignees) == 0 {
		return AssignResult{}, ErrInvalidInput
	}

	var result AssignResult
	for _, assignee := range assignees {
		assignee = strings.TrimSpace(assignee)
		if assignee == "" {
			continue
		}
		if _, err := s.employees.Get(ctx, assignee); err != nil {
			slog.Warn("task assignment skipped", "assignee", assignee, "error", err)
			result.Failed = append(result.Failed, assignee)
			continue
		}
		created, err := s.store.Insert(ctx, Task{
			Title:       title,
			Description: strings.TrimSpace(description),
			AssignedTo:  assignee,
			AssignedBy:  assignedBy,
			Status:      StatusPending,
			DueDate:     dueDate,
		})
		if err != nil {
			slog.Warn("task assignment failed", "assignee", assignee, "error", err)
			result.Failed = append(result.Failed, assignee)
			continue
		}
		result.Created = append(result.Created, created)
	}

	if len(result.Created) == 0 {
		return AssignResult{}, ErrInvalidInput
	}
	return result, nil
}

func (s *Service) List(ctx context.Context) ([]Task, error) {
	return s.store.List(ctx)
}

func (s *Service) UpdateStatus(ctx context.Context, taskID, status string) (Task, error) {
	if !ValidStatus(status) {
		return Task{}, ErrInvalidStatus
	}
	return s.store.UpdateStatus(ctx, taskID, status)
}
