package activity

import (
	"sort"
	"time"

	"github.com/readstats/kindle-analytics/internal/entities"
)

// Calendar heatmap data, one cell per day of the year. The renderer only
// draws; all positioning (ISO week, weekday) is computed here.

// Years returns the distinct years with at least one dated record, newest
// first.
func Years(records []entities.ClippingRecord) []int {
	seen := make(map[int]bool)
	for _, record := range records {
		if record.AddedAt != nil {
			seen[record.AddedAt.Year()] = true
		}
	}

	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// BuildYears builds a full calendar per year with activity, newest first.
func BuildYears(records []entities.ClippingRecord) []entities.YearActivity {
	years := Years(records)
	result := make([]entities.YearActivity, 0, len(years))
	for _, year := range years {
		result = append(result, BuildYear(records, year))
	}
	return result
}

// BuildYear lays out every day of the given year with its highlight count.
func BuildYear(records []entities.ClippingRecord, year int) entities.YearActivity {
	counts := make(map[time.Time]int)
	for _, record := range records {
		if record.AddedAt == nil || record.AddedAt.Year() != year {
			continue
		}
		day := record.AddedAt.Truncate(24 * time.Hour)
		counts[day]++
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var days []entities.DayActivity
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, entities.DayActivity{
			Date:    d,
			Week:    clampedWeek(d),
			Weekday: d.Weekday(),
			Count:   counts[d],
		})
	}

	return entities.YearActivity{
		Year:       year,
		Days:       days,
		MonthTicks: MonthTicks(year),
	}
}

// MonthTicks returns the week number where each month starts, for axis
// labels.
func MonthTicks(year int) []int {
	ticks := make([]int, 0, 12)
	for month := time.January; month <= time.December; month++ {
		firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		week := clampedWeek(firstDay)
		ticks = append(ticks, week)
	}
	return ticks
}

// clampedWeek is the ISO week number with the year-boundary wraparound
// pinned: early-January days in ISO week 52/53 render as week 1, and the
// final December days in ISO week 1 render as week 53, so every cell stays
// inside its own year's grid.
func clampedWeek(d time.Time) int {
	_, week := d.ISOWeek()
	if d.Month() == time.January && week > 50 {
		return 1
	}
	if d.Month() == time.December && week == 1 {
		return 53
	}
	return week
}
