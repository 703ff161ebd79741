package shared

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestMonthYearDefaultsToCurrentPeriod(t *testing.T) {
	r := httptest.NewRequest("GET", "/stats", nil)
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	month, year, ok := MonthYear(r, now)
	if !ok || month != 6 || year != 2026 {
		t.Fatalf("expected current period 6/2026, got %d/%d ok=%v", month, year, ok)
	}
}

func TestMonthYearExplicit(t *testing.T) {
	r := httptest.NewRequest("GET", "/stats?month=2&year=2024", nil)
	month, year, ok := MonthYear(r, time.Now())
	if !ok || month != 2 || year != 2024 {
		t.Fatalf("expected 2/2024, got %d/%d ok=%v", month, year, ok)
	}
}

func TestMonthYearRejectsMalformed(t *testing.T) {
	for _, query := range []string{"month=13&year=2026", "month=0&year=2026", "month=6&year=99", "month=abc&year=2026", "month=6"} {
		r := httptest.NewRequest("GET", "/stats?"+query, nil)
		if _, _, ok := MonthYear(r, time.Now()); ok {
			t.Fatalf("expected %q to be rejected", query)
		}
	}
}

func TestParseDate(t *testing.T) {
	if parsed, err := ParseDate("2026-06-15"); err != nil || parsed.Day() != 15 {
		t.Fatalf("expected plain date to parse, got %v %v", parsed, err)
	}
	if parsed, err := ParseDate("2026-06-15T09:30:00Z"); err != nil || parsed.Hour() != 9 {
		t.Fatalf("expected RFC3339 to parse, got %v %v", parsed, err)
	}
	if _, err := ParseDate("15/06/2026"); err == nil {
		t.Fatalf("expected unsupported format to fail")
	}
}
