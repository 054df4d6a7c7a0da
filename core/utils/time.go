package utils

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the textual date formats accepted from feeds, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02.01.2006 15:04:05",
	"2006-01-02",
	"02.01.2006",
}

// ParseTime parses a feed-supplied date value permissively.
// A whole number is treated as a Unix epoch timestamp; anything else is
// matched against the known textual layouts. Any parse failure yields nil
// rather than an error: date fields degrade to "no value".
func ParseTime(val any) *time.Time {
	switch v := val.(type) {
	case nil:
		return nil
	case float64:
		if v == 0 {
			return nil
		}
		t := time.Unix(int64(v), 0)
		return &t
	case int64:
		if v == 0 {
			return nil
		}
		t := time.Unix(v, 0)
		return &t
	case int:
		return ParseTime(int64(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		// Numeric strings are epoch timestamps, matching the feed's
		// habit of stringifying everything.
		if epoch, err := strconv.ParseInt(s, 10, 64); err == nil {
			return ParseTime(epoch)
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
		return nil
	case time.Time:
		if v.IsZero() {
			return nil
		}
		return &v
	default:
		return nil
	}
}
