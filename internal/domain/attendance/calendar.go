package attendance

import (
	"time"

	"github.com/rickar/cal/v2"
)

// Calendar classifies dates against the organization's rest days and
// designated holidays. Rest days are configurable; the default deployment
// uses Sunday.
type Calendar struct {
	restDays map[time.Weekday]bool
	holidays *cal.Calendar
}

// DayFacts reports every applicable flag: a date may be both a rest day and
// a holiday, and callers choose how to present that.
type DayFacts struct {
	Weekend     bool
	Holiday     bool
	Future      bool
	HolidayName string
}

func NewCalendar(restDays []time.Weekday, holidays []Holiday) *Calendar {
	rest := make(map[time.Weekday]bool, len(restDays))
	for _, day := range restDays {
		rest[day] = true
	}

	holidayCal := &cal.Calendar{Name: "organization holidays"}
	for _, h := range holidays {
		holidayCal.AddHoliday(&cal.Holiday{
			Name:      h.Name,
			Type:      cal.ObservancePublic,
			Month:     h.Date.Month(),
			Day:       h.Date.Day(),
			StartYear: h.Date.Year(),
			EndYear:   h.Date.Year(),
			Func:      cal.CalcDayOfMonth,
		})
	}
	return &Calendar{restDays: rest, holidays: holidayCal}
}

// Midnight truncates a timestamp to its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Classify resolves one date. A date equal to today is never future.
func (c *Calendar) Classify(date, today time.Time) DayFacts {
	day := Midnight(date)
	facts := DayFacts{
		Weekend: c.restDays[day.Weekday()],
		Future:  day.After(Midnight(today)),
	}
	if actual, _, holiday := c.holidays.IsHoliday(day); actual && holiday != nil {
		facts.Holiday = true
		facts.HolidayName = holiday.Name
	}
	return facts
}

// DaysInMonth follows the Gregorian rules, including leap years.
func DaysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
