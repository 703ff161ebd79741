package meeting

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestScheduleValidation(t *testing.T) {
	// Validation happens before any store access.
	svc := NewService(nil)

	when := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	if _, err := svc.Schedule(context.Background(), "   ", "", when, nil, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank title, got %v", err)
	}
	if _, err := svc.Schedule(context.Background(), "Quarterly review", "", time.Time{}, nil, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero time, got %v", err)
	}
}
