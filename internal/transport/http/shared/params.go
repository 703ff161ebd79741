package shared

import (
	"net/http"
	"strconv"
	"time"
)

// MonthYear reads month/year query parameters, falling back to the current
// period when both are absent. ok is false on malformed or out-of-range input.
func MonthYear(r *http.Request, now time.Time) (month, year int, ok bool) {
	monthRaw := r.URL.Query().Get("month")
	yearRaw := r.URL.Query().Get("year")
	if monthRaw == "" && yearRaw == "" {
		return int(now.Month()), now.Year(), true
	}

	month, err := strconv.Atoi(monthRaw)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	year, err = strconv.Atoi(yearRaw)
	if err != nil || year < 1900 || year > 9999 {
		return 0, 0, false
	}
	return month, year, true
}
