package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrInvalidAsOf     = errors.New("invalid as-of, expected RFC3339 or YYYY-MM-DD")
)

// ParseAsOf resolves the reference instant of a query. tz names an IANA zone
// and falls back to defaultLoc, then UTC. raw may be an RFC3339 instant or a
// bare date, which means 23:59:59 of that day in the zone. An empty raw
// means now.
func ParseAsOf(raw, tz string, now time.Time, defaultLoc *time.Location) (time.Time, error) {
	loc := defaultLoc
	if loc == nil {
		loc = time.UTC
	}
	if tz = strings.TrimSpace(tz); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w %q", ErrInvalidTimezone, tz)
		}
		loc = l
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.In(loc), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(loc), nil
	}
	d, err := time.ParseInLocation(DateLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidAsOf, raw)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, loc), nil
}
