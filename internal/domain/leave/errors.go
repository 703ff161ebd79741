package leave

import "errors"

var (
	ErrNotFound        = errors.New("leave request not found")
	ErrInvalidInput    = errors.New("leave type, start date and end date are required")
	ErrInvalidRange    = errors.New("end date before start date")
	ErrInvalidDecision = errors.New("decision must be approved or declined")
	ErrAlreadyDecided  = errors.New("leave request already decided")
)
