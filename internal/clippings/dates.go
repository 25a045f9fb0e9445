package clippings

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Clipping timestamps appear in whichever locale the device was set to, so
// the same file can mix "Añadido el lunes, 1 de enero de 2024" with
// "Added on Monday, January 1, 2024". Parsing normalizes to lowercase
// ASCII first so month lookup works for both.

// monthNumbers maps full Spanish and English month names (accent-stripped,
// lowercase) to their two-digit number. Unrecognized months fall back to
// "01" rather than failing the whole record.
var monthNumbers = map[string]string{
	"enero": "01", "febrero": "02", "marzo": "03", "abril": "04",
	"mayo": "05", "junio": "06", "julio": "07", "agosto": "08",
	"septiembre": "09", "octubre": "10", "noviembre": "11", "diciembre": "12",
	"january": "01", "february": "02", "march": "03", "april": "04",
	"may": "05", "june": "06", "july": "07", "august": "08",
	"september": "09", "october": "10", "november": "11", "december": "12",
}

const fallbackMonth = "01"

// Optional weekday token + comma, day, optional "de", month word,
// optional "de", four-digit year. Trailing time-of-day is ignored.
var datePattern = regexp.MustCompile(`(?:\w+,?\s+)?(\d{1,2})\s+(?:de\s+)?(\w+)\s+(?:de\s+)?(\d{4})`)

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
	"à", "a", "è", "e", "ì", "i", "ò", "o", "ù", "u",
	"ñ", "n", "ç", "c",
)

// ParseDate converts a free-text clipping date to a calendar day. It is
// total: any input, including garbage, yields nil rather than an error.
func ParseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	normalized := accentReplacer.Replace(strings.TrimSpace(strings.ToLower(raw)))

	match := datePattern.FindStringSubmatch(normalized)
	if match == nil {
		return nil
	}

	day, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	monthNum, ok := monthNumbers[match[2]]
	if !ok {
		monthNum = fallbackMonth
	}
	month, _ := strconv.Atoi(monthNum)
	year, err := strconv.Atoi(match[3])
	if err != nil {
		return nil
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes impossible dates (Feb 30 becomes Mar 1);
	// treat those as unparseable instead.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return nil
	}
	return &t
}
