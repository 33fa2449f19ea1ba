package reservation

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"

	// DefaultTimezone is used when no business timezone is configured.
	DefaultTimezone = "America/New_York"
)

// DateKey is a calendar date in canonical YYYY-MM-DD form.
type DateKey string

func (k DateKey) String() string {
	return string(k)
}

// Before reports whether k is an earlier calendar date than other.
// Canonical keys sort lexically in date order.
func (k DateKey) Before(other DateKey) bool {
	return k < other
}

// Calendar normalizes dates against a single business timezone. Every date
// used as a key or compared anywhere in the engine goes through it.
type Calendar struct {
	loc *time.Location
}

// NewCalendar loads the named IANA timezone. An empty name means DefaultTimezone.
func NewCalendar(timezone string) (*Calendar, error) {
	name := strings.TrimSpace(timezone)
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load business timezone %s: %w", name, err)
	}
	return &Calendar{loc: loc}, nil
}

// Location returns the business timezone.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Key normalizes an instant into a calendar date.
//
// Instants on exact UTC midnight are how the backing store persists plain
// dates, so they keep their UTC date. Any other instant is read in the
// business timezone.
func (c *Calendar) Key(t time.Time) DateKey {
	utc := t.UTC()
	if utc.Hour() == 0 && utc.Minute() == 0 && utc.Second() == 0 && utc.Nanosecond() == 0 {
		return DateKey(utc.Format(dateLayout))
	}
	return DateKey(t.In(c.loc).Format(dateLayout))
}

// ParseKey normalizes a date-only string or an RFC 3339 timestamp.
func (c *Calendar) ParseKey(raw string) (DateKey, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", fmt.Errorf("empty date")
	}

	if len(value) == len(dateLayout) {
		d, err := time.Parse(dateLayout, value)
		if err != nil {
			return "", fmt.Errorf("invalid date %q: %w", raw, err)
		}
		return DateKey(d.Format(dateLayout)), nil
	}

	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return c.Key(t), nil
}

// MustKey is ParseKey for literals known to be valid.
func (c *Calendar) MustKey(raw string) DateKey {
	k, err := c.ParseKey(raw)
	if err != nil {
		panic(err)
	}
	return k
}

// Midnight returns the start of the date in the business timezone.
func (c *Calendar) Midnight(k DateKey) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, string(k), c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", k, err)
	}
	return t, nil
}

// ISO renders the date as an RFC 3339 timestamp at business-timezone midnight.
func (c *Calendar) ISO(k DateKey) string {
	t, err := c.Midnight(k)
	if err != nil {
		return string(k)
	}
	return t.Format(time.RFC3339)
}

// Label renders a date for user-facing messages, e.g. "June 10, 2024".
func (c *Calendar) Label(k DateKey) string {
	t, err := c.Midnight(k)
	if err != nil {
		return string(k)
	}
	return t.Format("January 2, 2006")
}

// Today returns the current calendar date in the business timezone.
func (c *Calendar) Today(now time.Time) DateKey {
	return DateKey(now.In(c.loc).Format(dateLayout))
}

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start DateKey
	End   DateKey
}

// Contains reports whether k lies inside the range. Open ends are unbounded.
func (r DateRange) Contains(k DateKey) bool {
	if r.Start != "" && k.Before(r.Start) {
		return false
	}
	if r.End != "" && r.End.Before(k) {
		return false
	}
	return true
}

// ParseClock validates a 24-hour HH:MM time and returns minutes since midnight.
func ParseClock(value string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", value)
	}
	return t.Hour()*60 + t.Minute(), nil
}
