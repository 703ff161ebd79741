package attendance

import "time"

// Day statuses produced by reconciliation.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusWeekend = "weekend"
	StatusHoliday = "holiday"
	StatusFuture  = "future"
)

// Clock-in/out cell markers. Non-working days render empty cells so they
// never read as an absence.
const (
	MarkAbsent  = "Absent"
	MarkNone    = "-"
	clockFormat = "03:04 PM"
)

type TimeEntry struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employeeId"`
	Date        time.Time  `json:"date"`
	LoginTime   time.Time  `json:"loginTime"`
	LogoutTime  *time.Time `json:"logoutTime,omitempty"`
	HoursWorked float64    `json:"hoursWorked"`
}

type Holiday struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

// DayRow is the reconciled view of one calendar day for one employee.
// It is derived on every read and never persisted.
type DayRow struct {
	Date        string `json:"date"`
	Day         int    `json:"day"`
	Status      string `json:"status"`
	ClockIn     string `json:"clockIn"`
	ClockOut    string `json:"clockOut"`
	Weekend     bool   `json:"weekend"`
	Holiday     bool   `json:"holiday"`
	HolidayName string `json:"holidayName,omitempty"`
}

type DailyStats struct {
	Total              int      `json:"total"`
	Present            int      `json:"present"`
	Absent             int      `json:"absent"`
	PresentEmployeeIDs []string `json:"presentEmployeeIds"`
}

type DayAggregate struct {
	Day          int     `json:"day"`
	TotalHours   float64 `json:"totalHours"`
	PresentCount int     `json:"presentCount"`
}

type Stats struct {
	Daily         DailyStats     `json:"daily"`
	Monthly       []DayAggregate `json:"monthly"`
	EmployeeStats map[string]int `json:"employeeStats"`
}
