package payroll

import "errors"

var (
	ErrDuplicateIssuance = errors.New("payroll already issued for this period")
	ErrRecordNotFound    = errors.New("payroll record not found")
	ErrInvalidPeriod     = errors.New("month must be 1-12 and year in range")
	ErrInvalidAmount     = errors.New("basic salary must be greater than zero")
	ErrNegativeAmount    = errors.New("allowances and deductions must not be negative")
	ErrRenderTimeout     = errors.New("slip rendering timed out")
	ErrRenderBusy        = errors.New("slip renderer is at capacity")
)
