package employee

import "errors"

var (
	ErrNotFound      = errors.New("employee not found")
	ErrEmailExists   = errors.New("email already exists")
	ErrNotActive     = errors.New("employee is not active")
	ErrInvalidInput  = errors.New("name and email are required")
	ErrInvalidSalary = errors.New("valid salary is required")
	ErrInvalidHours  = errors.New("valid work hours is required")
)
