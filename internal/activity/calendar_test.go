package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readstats/kindle-analytics/internal/entities"
)

func dated(year int, month time.Month, day int) entities.ClippingRecord {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return entities.ClippingRecord{
		Author:  "Author",
		Title:   "Book",
		AddedAt: &t,
		Text:    "note",
	}
}

func TestYears_NewestFirstSkippingUndated(t *testing.T) {
	records := []entities.ClippingRecord{
		dated(2022, time.March, 1),
		dated(2024, time.January, 5),
		{Author: "Author", Title: "Book", Text: "undated"},
		dated(2023, time.July, 10),
		dated(2024, time.February, 2),
	}

	assert.Equal(t, []int{2024, 2023, 2022}, Years(records))
}

func TestBuildYear_CountsPerDay(t *testing.T) {
	records := []entities.ClippingRecord{
		dated(2024, time.January, 5),
		dated(2024, time.January, 5),
		dated(2024, time.January, 6),
		dated(2023, time.January, 5), // other year, ignored
	}

	year := BuildYear(records, 2024)

	require.Equal(t, 2024, year.Year)
	require.Len(t, year.Days, 366) // 2024 is a leap year

	counts := make(map[string]int)
	for _, day := range year.Days {
		counts[day.Date.Format("2006-01-02")] = day.Count
	}
	assert.Equal(t, 2, counts["2024-01-05"])
	assert.Equal(t, 1, counts["2024-01-06"])
	assert.Equal(t, 0, counts["2024-01-07"])
}

func TestBuildYear_WeekClamping(t *testing.T) {
	year := BuildYear(nil, 2021)

	byDate := make(map[string]entities.DayActivity)
	for _, day := range year.Days {
		byDate[day.Date.Format("2006-01-02")] = day
	}

	// 2021-01-01 falls in ISO week 53 of 2020; it must render as week 1.
	assert.Equal(t, 1, byDate["2021-01-01"].Week)
	// 2024-12-30 falls in ISO week 1 of 2025; it must render as week 53.
	year2024 := BuildYear(nil, 2024)
	byDate2024 := make(map[string]entities.DayActivity)
	for _, day := range year2024.Days {
		byDate2024[day.Date.Format("2006-01-02")] = day
	}
	assert.Equal(t, 53, byDate2024["2024-12-30"].Week)
}

func TestMonthTicks(t *testing.T) {
	ticks := MonthTicks(2024)

	require.Len(t, ticks, 12)
	assert.Equal(t, 1, ticks[0])
	// Ticks are non-decreasing after January.
	for i := 2; i < len(ticks); i++ {
		assert.GreaterOrEqual(t, ticks[i], ticks[i-1])
	}
}

func TestBuildYears_OnePerYear(t *testing.T) {
	records := []entities.ClippingRecord{
		dated(2023, time.May, 1),
		dated(2024, time.May, 1),
	}

	years := BuildYears(records)

	require.Len(t, years, 2)
	assert.Equal(t, 2024, years[0].Year)
	assert.Equal(t, 2023, years[1].Year)
}
