package status

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/readstats/kindle-analytics/internal/entities"
)

const (
	// DefaultInactivityDays is how long a book may sit without new
	// highlights before it is classified Inactive instead of Reading.
	DefaultInactivityDays = 30

	// BackdateThresholdDays is how far a completion tag may trail the
	// last real highlight before the tag date is considered backdated
	// and the last highlight date wins. Shares the value 30 with the
	// inactivity default but is an unrelated knob; keep them separate.
	BackdateThresholdDays = 30
)

// forceTodayTag overrides the backdating heuristic: the tag date is
// honored no matter how far it sits from the last highlight.
const forceTodayTag = "#endtoday"

// completionTagPattern recognizes the markers a reader drops into a note
// to declare a book finished.
var completionTagPattern = regexp.MustCompile(`(?i)#(endtoday|fin|end)\b`)

// Options configure one reconciliation pass. Now is injected so the
// Reading/Inactive decision is deterministic under test.
type Options struct {
	InactivityDays int
	Now            time.Time
}

type bookKey struct {
	author string
	title  string
}

type bookGroup struct {
	key     bookKey
	records []entities.ClippingRecord
}

// Reconcile groups records by (author, title) and infers one BookSummary
// per book. Groups keep first-appearance order so the "first matching tag
// record" rule is deterministic.
func Reconcile(records []entities.ClippingRecord, opts Options) []entities.BookSummary {
	if opts.InactivityDays <= 0 {
		opts.InactivityDays = DefaultInactivityDays
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	groups := groupByBook(records)

	summaries := make([]entities.BookSummary, 0, len(groups))
	for _, group := range groups {
		summaries = append(summaries, summarize(group, opts))
	}

	sortSummaries(summaries)
	return summaries
}

func groupByBook(records []entities.ClippingRecord) []bookGroup {
	index := make(map[bookKey]int)
	var groups []bookGroup

	for _, record := range records {
		key := bookKey{author: record.Author, title: record.Title}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, bookGroup{key: key})
		}
		groups[i].records = append(groups[i].records, record)
	}

	return groups
}

func summarize(group bookGroup, opts Options) entities.BookSummary {
	summary := entities.BookSummary{
		Author:       group.key.author,
		Title:        group.key.title,
		StartDisplay: entities.NoActivityDisplay,
		EndDisplay:   entities.NoActivityDisplay,
		NoteCount:    len(group.records),
	}

	startDate := earliestDate(group.records)
	summary.StartDate = startDate
	if startDate != nil {
		summary.StartDisplay = startDate.Format(entities.SummaryDateLayout)
	}

	for _, record := range group.records {
		if record.Location > summary.MaxLocation {
			summary.MaxLocation = record.Location
		}
	}

	if tagIndex, ok := findTagRecord(group.records); ok {
		resolveCompleted(&summary, group.records, tagIndex, startDate)
	} else {
		resolveOngoing(&summary, group.records, startDate, opts)
	}

	return summary
}

// findTagRecord returns the first record in extraction order whose text
// carries a completion tag. When several records carry tags only this
// first one is honored; the rest count as ordinary highlights.
func findTagRecord(records []entities.ClippingRecord) (int, bool) {
	for i, record := range records {
		if completionTagPattern.MatchString(record.Text) {
			return i, true
		}
	}
	return 0, false
}

func resolveCompleted(summary *entities.BookSummary, records []entities.ClippingRecord, tagIndex int, startDate *time.Time) {
	summary.Status = entities.StatusCompleted

	tagRecord := records[tagIndex]
	tagDate := tagRecord.AddedAt
	isForceToday := strings.Contains(strings.ToLower(tagRecord.Text), forceTodayTag)

	// Latest dated highlight at or before the tag, tag record excluded.
	// Falls back to the tag date when nothing else is dated.
	lastHistoric := tagDate
	if tagDate != nil {
		var max *time.Time
		for i, record := range records {
			if i == tagIndex || record.AddedAt == nil || record.AddedAt.After(*tagDate) {
				continue
			}
			if max == nil || record.AddedAt.After(*max) {
				max = record.AddedAt
			}
		}
		if max != nil {
			lastHistoric = max
		}
	}

	var completionDate *time.Time
	switch {
	case isForceToday:
		completionDate = tagDate
	case tagDate != nil && lastHistoric != nil &&
		daysBetween(*lastHistoric, *tagDate) > BackdateThresholdDays:
		// A tag added long after the last real highlight is a
		// backdated batch tag; prefer the last genuine activity.
		completionDate = lastHistoric
	default:
		completionDate = tagDate
	}

	summary.EndDate = completionDate
	summary.EndDisplay = entities.NoDateDisplay
	if completionDate != nil {
		summary.EndDisplay = completionDate.Format(entities.SummaryDateLayout)
	}

	if startDate != nil && completionDate != nil {
		if days := daysBetween(*startDate, *completionDate); days > 0 {
			summary.ReadingDays = days
		}
	}
}

func resolveOngoing(summary *entities.BookSummary, records []entities.ClippingRecord, startDate *time.Time, opts Options) {
	lastActivity := latestDate(records)

	daysInactive := 0
	if lastActivity != nil {
		daysInactive = daysBetween(*lastActivity, opts.Now)
	}

	if daysInactive < opts.InactivityDays {
		summary.Status = entities.StatusReading
	} else {
		summary.Status = entities.StatusInactive
	}

	summary.EndDate = lastActivity
	summary.EndDisplay = entities.NoActivityDisplay
	if lastActivity != nil {
		summary.EndDisplay = lastActivity.Format(entities.SummaryDateLayout)
	}

	if startDate != nil {
		if days := daysBetween(*startDate, opts.Now); days > 0 {
			summary.ReadingDays = days
		}
	}
}

// statusPriority orders the final table: books in progress first, stalled
// ones next, finished ones last. Unknown statuses sink to the bottom.
func statusPriority(status entities.ReadingStatus) int {
	switch status {
	case entities.StatusReading:
		return 0
	case entities.StatusInactive:
		return 1
	case entities.StatusCompleted:
		return 2
	default:
		return 3
	}
}

func sortSummaries(summaries []entities.BookSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		pi, pj := statusPriority(summaries[i].Status), statusPriority(summaries[j].Status)
		if pi != pj {
			return pi < pj
		}
		// Fixed-width YYYY-MM-DD display dates compare correctly as
		// strings; newest first.
		return summaries[i].EndDisplay > summaries[j].EndDisplay
	})
}

func earliestDate(records []entities.ClippingRecord) *time.Time {
	var min *time.Time
	for _, record := range records {
		if record.AddedAt == nil {
			continue
		}
		if min == nil || record.AddedAt.Before(*min) {
			min = record.AddedAt
		}
	}
	return min
}

func latestDate(records []entities.ClippingRecord) *time.Time {
	var max *time.Time
	for _, record := range records {
		if record.AddedAt == nil {
			continue
		}
		if max == nil || record.AddedAt.After(*max) {
			max = record.AddedAt
		}
	}
	return max
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
