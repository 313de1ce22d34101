// Package period provides the calendar month cursor the dashboard is keyed
// on: every income, expense, analysis and recommendation read is scoped to
// exactly one Month.
package period

import (
	"encoding/json"
	"fmt"
	"time"
)

// KeyFormat is the format used to represent months as strings, e.g. "2024-03".
const KeyFormat = "2006-01"

const readKeyFormat = "2006-1" // permissive read format (allows 2024-3)

// Month identifies one calendar month. The year is unbounded in both
// directions; the only arithmetic is calendar rollover.
type Month struct {
	y int
	m time.Month
}

// New returns a normalized Month for the given year and month; out-of-range
// months roll over into the adjacent year the way time.Date does.
func New(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{y: t.Year(), m: t.Month()}
}

// Of returns the Month containing t.
func Of(t time.Time) Month { return New(t.Year(), t.Month()) }

// This returns the current wall-clock month.
func This() Month { return Of(time.Now().UTC()) }

// Year returns the calendar year.
func (m Month) Year() int { return m.y }

// Month returns the calendar month.
func (m Month) Month() time.Month { return m.m }

// Next returns the following month, rolling into the next year after
// December.
func (m Month) Next() Month { return New(m.y, m.m+1) }

// Prev returns the preceding month, rolling into the previous year before
// January.
func (m Month) Prev() Month { return New(m.y, m.m-1) }

// Contains reports whether t falls inside the month.
func (m Month) Contains(t time.Time) bool {
	t = t.UTC()
	return t.Year() == m.y && t.Month() == m.m
}

// Before reports whether m is before x.
func (m Month) Before(x Month) bool {
	return m.y < x.y || (m.y == x.y && m.m < x.m)
}

// String returns the display name of the month, e.g. "March 2024".
func (m Month) String() string { return fmt.Sprintf("%s %d", m.m, m.y) }

// Key returns the month in its standard "YYYY-MM" form.
func (m Month) Key() string {
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC).Format(KeyFormat)
}

// Parse parses a Month from a string. It is lenient and accepts "2024-3" as
// well as "2024-03".
func Parse(str string) (Month, error) {
	t, err := time.Parse(readKeyFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, KeyFormat, err)
	}
	return Of(t), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Month {
	m, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}

func (m *Month) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	v, err := Parse(str)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m Month) MarshalJSON() ([]byte, error) {
	str := m.Key()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Month)(nil)
var _ json.Unmarshaler = (*Month)(nil)
