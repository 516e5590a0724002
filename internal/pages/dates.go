package pages

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate accepts the date shapes content editors produce. Zone-less
// values are read as UTC.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date is a parsed content date that keeps the original text when it
// could not be parsed.
type Date struct {
	Raw  string    `json:"raw"`
	Time time.Time `json:"time"`
	OK   bool      `json:"ok"`
}

func newDate(s string) Date {
	t, ok := parseDate(s)
	return Date{Raw: s, Time: t, OK: ok}
}

// Long renders e.g. "December 10, 2024".
func (d Date) Long() string {
	if !d.OK {
		return d.Raw
	}
	return d.Time.Format("January 2, 2006")
}

// Short renders e.g. "Dec 10, 2024".
func (d Date) Short() string {
	if !d.OK {
		return d.Raw
	}
	return d.Time.Format("Jan 2, 2006")
}

// Clock renders e.g. "09:00 AM".
func (d Date) Clock() string {
	if !d.OK {
		return ""
	}
	return d.Time.Format("03:04 PM")
}
