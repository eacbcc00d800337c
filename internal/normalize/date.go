// Package normalize converts raw date-like and currency-like strings into
// canonical values. All functions are pure and issuer-agnostic; unparseable
// input yields ok=false, never an error.
package normalize

import (
	"regexp"
	"strings"
	"time"
)

// dateLayouts enumerates the accepted input formats. Statements mix
// day-month-year with slash, dash or dot separators, month names in short and
// long form, and two-digit years.
var dateLayouts = []string{
	"2-1-2006",
	"2/1/2006",
	"2.1.2006",
	"2 Jan 2006",
	"2 January 2006",
	"2-Jan-2006",
	"2/Jan/2006",
	"2-January-2006",
	"2-1-06",
	"2/1/06",
	"2.1.06",
	"2 Jan 06",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02",
}

// twoDigitYearLayouts flags the layouts whose year is ambiguous and needs the
// century pivot applied after parsing.
var twoDigitYearLayouts = map[string]bool{
	"2-1-06":   true,
	"2/1/06":   true,
	"2.1.06":   true,
	"2 Jan 06": true,
}

var (
	datePrefixRe    = regexp.MustCompile(`(?i)^(date:|dated:)\s*`)
	dateSepRepeatRe = regexp.MustCompile(`[-/.]{2,}`)
)

// cleanDateString collapses whitespace, strips "Date:" prefixes and repairs
// doubled separators before layout matching.
func cleanDateString(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	s = datePrefixRe.ReplaceAllString(s, "")
	s = dateSepRepeatRe.ReplaceAllString(s, "-")
	return strings.TrimSpace(s)
}

// Date normalizes a raw date string to ISO form (YYYY-MM-DD). Normalizing an
// already-ISO date returns it unchanged. Two-digit years pivot at 50:
// 00-49 map to 2000-2049, 50-99 to 1950-1999.
func Date(raw string) (string, bool) {
	s := cleanDateString(raw)
	if s == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if twoDigitYearLayouts[layout] {
			t = pivotCentury(t)
		}
		return t.Format("2006-01-02"), true
	}
	return "", false
}

// pivotCentury remaps a two-digit year parsed with Go's built-in 69 pivot
// (00-68 become 20xx, 69-99 become 19xx) onto the 50 pivot: years 50-68 land
// in 2050-2068 and are pulled back a century.
func pivotCentury(t time.Time) time.Time {
	if y := t.Year(); y >= 2050 && y <= 2068 {
		return t.AddDate(-100, 0, 0)
	}
	return t
}

// dateInTextRe matches the date shapes Date accepts when they are embedded in
// longer text, e.g. "Payment Due Date: 05 Nov 2025".
var dateInTextRe = regexp.MustCompile(
	`(?i)\b(\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4}` +
		`|\d{1,2}[-/ ](?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*[-/ ]\d{2,4}` +
		`|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.? \d{1,2},? \d{4}` +
		`|\d{4}-\d{2}-\d{2})\b`)

// DateInText finds the first parseable date inside a longer string and
// normalizes it. Used when a run contains the label and value together.
func DateInText(text string) (string, bool) {
	for _, m := range dateInTextRe.FindAllString(text, -1) {
		if iso, ok := Date(m); ok {
			return iso, true
		}
	}
	return "", false
}
