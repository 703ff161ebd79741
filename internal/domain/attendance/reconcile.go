package attendance

import (
	"fmt"
	"time"
)

// Reconcile merges one employee's raw time entries for a month with calendar
// facts into one row per calendar day, ordered day 1..N with no gaps.
//
// Status policy: an entry makes the day present; otherwise future days stay
// neutral, rest days and holidays are never counted absent, and remaining
// working days are absent.
func Reconcile(month, year int, entries []TimeEntry, calendar *Calendar, today time.Time) []DayRow {
	byDay := make(map[int]TimeEntry, len(entries))
	for _, entry := range entries {
		// Stored timestamps may carry time-of-day; match by calendar day.
		if int(entry.Date.Month()) == month && entry.Date.Year() == year {
			byDay[entry.Date.Day()] = entry
		}
	}

	days := DaysInMonth(month, year)
	rows := make([]DayRow, 0, days)
	for day := 1; day <= days; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, today.Location())
		facts := calendar.Classify(date, today)

		row := DayRow{
			Date:        fmt.Sprintf("%04d-%02d-%02d", year, month, day),
			Day:         day,
			Weekend:     facts.Weekend,
			Holiday:     facts.Holiday,
			HolidayName: facts.HolidayName,
		}

		if entry, ok := byDay[day]; ok {
			row.Status = StatusPresent
			row.ClockIn = formatClock(&entry.LoginTime)
			row.ClockOut = formatClock(entry.LogoutTime)
		} else {
			switch {
			case facts.Future:
				row.Status = StatusFuture
				row.ClockIn = MarkNone
				row.ClockOut = MarkNone
			case facts.Holiday:
				row.Status = StatusHoliday
			case facts.Weekend:
				row.Status = StatusWeekend
			default:
				row.Status = StatusAbsent
				row.ClockIn = MarkAbsent
				row.ClockOut = MarkAbsent
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func formatClock(t *time.Time) string {
	if t == nil || t.IsZero() {
		return MarkNone
	}
	return t.Format(clockFormat)
}
