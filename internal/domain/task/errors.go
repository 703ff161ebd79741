package task

import "errors"

var (
	ErrNotFound      = errors.New("task not found")
	ErrInvalidInput  = errors.New("title and at least one assignee are required")
	ErrInvalidStatus = errors.New("status must be pending, in-progress or completed")
)
