// Package dates is the single place where calendar dates are parsed and
// formatted. Expiration dates travel through the system as YYYY-MM-DD text
// with local-civil-date semantics: "2024-03-01" means local midnight of that
// day, never UTC midnight. Routing every parse through this package is what
// keeps the one-day shift for users east of UTC from coming back.
package dates

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the wire format for expiration dates.
const DateLayout = "2006-01-02"

// DisplayLayout is the format shown to users.
const DisplayLayout = "2006/01/02"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseLocal parses a YYYY-MM-DD string as local midnight of that calendar
// day. Anything that is not a well-formed date is an error; callers treat
// such records as degraded rather than failing.
func ParseLocal(s string) (time.Time, error) {
	if !dateRe.MatchString(s) {
		return time.Time{}, fmt.Errorf("not a YYYY-MM-DD date: %q", s)
	}

	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}

	return t, nil
}

// FormatDisplay converts a YYYY-MM-DD string to YYYY/MM/DD for display.
// Well-formed input is converted with string substitution only, bypassing
// timezone arithmetic entirely. Invalid input yields an empty string.
func FormatDisplay(s string) string {
	if s == "" {
		return ""
	}

	if dateRe.MatchString(s) {
		return s[0:4] + "/" + s[5:7] + "/" + s[8:10]
	}

	t, err := ParseTimestamp(s)
	if err != nil {
		return ""
	}

	return t.Format(DisplayLayout)
}

// FormatLocal renders a time as the YYYY-MM-DD string for its local calendar day.
func FormatLocal(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay truncates a time to local midnight of its calendar day.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last second of the calendar day, used for inclusive
// upper bounds of date ranges.
func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 0, t.Location())
}

// timestampLayouts are tried in order when parsing registration timestamps.
// Backends have emitted RFC3339 with and without fractional seconds, and
// bare date-time without offset.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses a created-at style timestamp. Plain dates are also
// accepted and interpreted at local midnight.
func ParseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if dateRe.MatchString(s) {
		return ParseLocal(s)
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp: %q", s)
}
