package attendance

import "sort"

// DailySnapshot counts distinct employees with an entry today against the
// active headcount. total always equals present + absent.
func DailySnapshot(totalActive int, todaysEntries []TimeEntry) DailyStats {
	seen := make(map[string]bool, len(todaysEntries))
	for _, entry := range todaysEntries {
		seen[entry.EmployeeID] = true
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return DailyStats{
		Total:              totalActive,
		Present:            len(ids),
		Absent:             totalActive - len(ids),
		PresentEmployeeIDs: ids,
	}
}

// MonthlySnapshot groups a month's entries by calendar day, summing hours and
// counting distinct employees. Days with no entries are omitted (sparse).
func MonthlySnapshot(entries []TimeEntry) []DayAggregate {
	hours := make(map[int]float64)
	present := make(map[int]map[string]bool)
	for _, entry := range entries {
		day := entry.Date.Day()
		hours[day] += entry.HoursWorked
		if present[day] == nil {
			present[day] = make(map[string]bool)
		}
		present[day][entry.EmployeeID] = true
	}

	days := make([]int, 0, len(hours))
	for day := range hours {
		days = append(days, day)
	}
	sort.Ints(days)

	aggregates := make([]DayAggregate, 0, len(days))
	for _, day := range days {
		aggregates = append(aggregates, DayAggregate{
			Day:          day,
			TotalHours:   hours[day],
			PresentCount: len(present[day]),
		})
	}
	return aggregates
}

// EmployeeMonthlySnapshot counts days present per employee for the month.
// Entries are unique per employee and day, so each one is a day present.
func EmployeeMonthlySnapshot(entries []TimeEntry) map[string]int {
	daysPresent := make(map[string]int)
	for _, entry := range entries {
		daysPresent[entry.EmployeeID]++
	}
	return daysPresent
}
