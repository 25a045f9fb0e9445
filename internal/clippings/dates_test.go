package clippings

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestParseDate_LocaleSymmetry(t *testing.T) {
	spanish := ParseDate("1 de enero de 2024")
	english := ParseDate("1 January 2024")

	if spanish == nil || english == nil {
		t.Fatalf("expected both locales to parse, got %v and %v", spanish, english)
	}
	if !spanish.Equal(*english) {
		t.Errorf("expected identical dates, got %v vs %v", *spanish, *english)
	}
	if !spanish.Equal(date(2024, time.January, 1)) {
		t.Errorf("expected 2024-01-01, got %v", *spanish)
	}
}

func TestParseDate_Formats(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"lunes, 5 de febrero de 2024", date(2024, time.February, 5)},
		{"miércoles, 3 de enero de 2024", date(2024, time.January, 3)},
		{"sábado, 26 de marzo de 2016 18:37:26", date(2016, time.March, 26)},
		{"Monday, 2 September 2019 15:04:05", date(2019, time.September, 2)},
		{"15 October 2021", date(2021, time.October, 15)},
		{"9 de julio de 2020", date(2020, time.July, 9)},
		{"31 December 1999", date(1999, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseDate(tt.input)
			if result == nil {
				t.Fatalf("expected %v, got nil", tt.expected)
			}
			if !result.Equal(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, *result)
			}
		})
	}
}

func TestParseDate_TotalOnGarbage(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"not a date at all",
		"de de de",
		"99999",
		"January",
		"April 15, 2025", // month-first US format is not recognized
	}

	for _, input := range inputs {
		t.Run("garbage_"+input, func(t *testing.T) {
			if result := ParseDate(input); result != nil {
				t.Errorf("expected nil for %q, got %v", input, *result)
			}
		})
	}
}

func TestParseDate_InvalidCalendarDate(t *testing.T) {
	tests := []string{
		"31 de febrero de 2024",
		"31 April 2023",
		"0 de enero de 2024",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if result := ParseDate(input); result != nil {
				t.Errorf("expected nil for impossible date %q, got %v", input, *result)
			}
		})
	}
}

func TestParseDate_UnknownMonthFallsBackToJanuary(t *testing.T) {
	result := ParseDate("12 brumario 2024")
	if result == nil {
		t.Fatal("expected fallback parse, got nil")
	}
	if !result.Equal(date(2024, time.January, 12)) {
		t.Errorf("expected fallback to January, got %v", *result)
	}
}

func TestParseDate_AccentedInputNormalized(t *testing.T) {
	// Weekday carries the accent; months are matched after stripping.
	result := ParseDate("Miércoles, 7 de Agosto de 2024")
	if result == nil {
		t.Fatal("expected parse, got nil")
	}
	if !result.Equal(date(2024, time.August, 7)) {
		t.Errorf("expected 2024-08-07, got %v", *result)
	}
}
