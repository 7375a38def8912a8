package timeline

import (
	"fmt"
	"time"
)

// CivilDate is a timezone-free calendar date. All date arithmetic in
// the builder goes through it so multi-night expansion never shifts a
// day across a DST boundary.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate accepts ISO YYYY-MM-DD. It tolerates a trailing time part
// ("2026-06-16T15:00:00Z") by slicing the first ten characters.
func ParseDate(s string) (CivilDate, error) {
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return CivilDate{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return CivilDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// AddDays relies on time.Date normalization in a fixed zone, which is
// pure calendar arithmetic.
func (d CivilDate) AddDays(n int) CivilDate {
	t := time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC)
	return CivilDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d CivilDate) Before(other CivilDate) bool {
	return d.String() < other.String()
}

func (d CivilDate) Equal(other CivilDate) bool {
	return d == other
}

// Weekday returns the day of week, Monday = 0, matching the
// Monday-first calendar grid.
func (d CivilDate) Weekday() int {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return (int(t.Weekday()) + 6) % 7
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
