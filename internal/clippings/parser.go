package clippings

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/readstats/kindle-analytics/internal/entities"
)

// entrySeparator is the delimiter line between clipping entries.
const entrySeparator = "=========="

var (
	// Matches: "Añadido el lunes, 1 de enero de 2024 10:11:12"
	// or: "Added on Monday, January 1, 2024 10:11:12 AM"
	addedOnPattern = regexp.MustCompile(`(?:Añadido el|Added on)\s*(.+)$`)

	// Location markers seen in the wild, Spanish and English devices:
	// "Loc. 123", "página 45", "page 45", "location 1406"
	locationPattern = regexp.MustCompile(`(?i)(?:Loc\.|page|página|location)\s+(\d+)`)
)

// Parser extracts ClippingRecords from a raw clippings export.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse reads an entire clippings export and returns the extracted records
// in file order. Malformed entries are skipped, never fatal; the only
// error condition is a failing reader.
func (p *Parser) Parse(r io.Reader) ([]entities.ClippingRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []entities.ClippingRecord
	var currentLines []string

	flush := func() {
		if record, ok := p.parseEntry(currentLines); ok {
			records = append(records, record)
		}
		currentLines = nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == entrySeparator {
			flush()
			continue
		}
		currentLines = append(currentLines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading clippings: %w", err)
	}

	// Last entry when the file does not end with a separator.
	flush()

	return records, nil
}

// parseEntry turns the lines of one delimited entry into a record. Entries
// with fewer than four lines or an empty body are dropped.
func (p *Parser) parseEntry(lines []string) (entities.ClippingRecord, bool) {
	lines = trimBlankEdges(lines)
	if len(lines) < 4 {
		return entities.ClippingRecord{}, false
	}

	title, author := parseTitleAuthor(lines[0])
	addedAt, location := parseMetadata(lines[1])

	// Line 2 is the blank spacer; everything after it is body text.
	text := strings.TrimSpace(strings.Join(lines[3:], "\n"))
	if text == "" {
		return entities.ClippingRecord{}, false
	}

	return entities.ClippingRecord{
		Author:   author,
		Title:    title,
		AddedAt:  addedAt,
		Location: location,
		Text:     text,
	}, true
}

// parseTitleAuthor splits a "Title (Author)" header on the last opening
// parenthesis. Headers without one keep the whole line as title and get
// the unknown-author sentinel.
func parseTitleAuthor(line string) (title, author string) {
	idx := strings.LastIndex(line, "(")
	if idx == -1 {
		return cleanTitle(line), entities.UnknownAuthor
	}

	title = cleanTitle(line[:idx])
	author = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line[idx+1:]), ")"))
	if author == "" {
		author = entities.UnknownAuthor
	}
	return title, author
}

// cleanTitle strips the UTF-8 byte order mark some devices prepend to the
// first entry, plus surrounding whitespace.
func cleanTitle(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\uFEFF", ""))
}

func parseMetadata(line string) (*time.Time, int) {
	var addedAt *time.Time
	if match := addedOnPattern.FindStringSubmatch(line); match != nil {
		addedAt = ParseDate(match[1])
	}

	location := 0
	if match := locationPattern.FindStringSubmatch(line); match != nil {
		location, _ = strconv.Atoi(match[1])
	}

	return addedAt, location
}

// trimBlankEdges removes leading and trailing blank lines so entries next
// to separators segment the same way regardless of surrounding newlines.
func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
