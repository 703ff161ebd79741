package task

import "time"

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AssignedTo  string     `json:"assignedTo"`
	AssignedBy  string     `json:"assignedBy,omitempty"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// AssignResult reports a fan-out assignment. Assignment to several employees
// creates one task per assignee; failures for individual assignees do not
// abort the rest.
type AssignResult struct {
	Created []Task   `json:"created"`
	Failed  []string `json:"failed,omitempty"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}
