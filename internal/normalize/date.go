package normalize

import (
	"fmt"
	"strings"
	"time"
)

// Slash dates are pinned to mid-day UTC so the calendar day survives
// conversion into any reporting time zone.
const slashDateHour = 12

var genericLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
	"02-01-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	time.RFC1123,
	time.RFC822,
}

// ParseDate converts a raw date representation into an absolute
// timestamp. It never fails: when the input is empty or unparseable
// the current instant is returned and the second result is false so
// strict callers can tell a parsed date from a defaulted one.
//
// Slash-delimited input is read as day/month/year with two-digit years
// expanded into the 2000s. Everything else goes through a fixed layout
// list.
func ParseDate(v any) (time.Time, bool) {
	now := time.Now().UTC()
	if v == nil {
		return now, false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	if s == "" {
		return now, false
	}
	if strings.Contains(s, "/") {
		if t, ok := parseSlashDate(s); ok {
			return t, true
		}
	}
	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return now, false
}

func parseSlashDate(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day := pad2(strings.TrimSpace(parts[0]))
	month := pad2(strings.TrimSpace(parts[1]))
	year := strings.TrimSpace(parts[2])
	if len(year) == 2 {
		year = "20" + year
	}
	// time.Parse rejects out-of-range components, unlike time.Date
	// which would silently roll them over.
	t, err := time.Parse(time.DateOnly, year+"-"+month+"-"+day)
	if err != nil {
		return time.Time{}, false
	}
	return t.Add(slashDateHour * time.Hour), true
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
