package budgeters

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"
)

// Period is a year/month unit of ledger data. Each period is persisted as
// one directory of three .cls files.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the period containing the given date.
func PeriodOf(d Date) Period {
	return Period{Year: d.Year(), Month: d.Month()}
}

// CurrentPeriod returns the period containing today.
func CurrentPeriod() Period { return PeriodOf(Today()) }

// String formats the period as "2006/01".
func (p Period) String() string {
	return fmt.Sprintf("%04d/%02d", p.Year, int(p.Month))
}

// Dir returns the period's directory path relative to the ledger root.
func (p Period) Dir() string {
	return filepath.Join(fmt.Sprintf("%04d", p.Year), fmt.Sprintf("%02d", int(p.Month)))
}

// FirstDay returns the first day of the period.
func (p Period) FirstDay() Date { return NewDate(p.Year, p.Month, 1) }

// Next returns the following period.
func (p Period) Next() Period {
	d := NewDate(p.Year, p.Month+1, 1)
	return Period{Year: d.Year(), Month: d.Month()}
}

// NewPeriod parses the year and month strings the driver collects from the
// user. Both must be plain numbers, e.g. "2026" and "8".
func NewPeriod(year, month string) (Period, error) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return Period{}, fmt.Errorf("invalid year %q: %w", year, err)
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return Period{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	if m < 1 || m > 12 {
		return Period{}, fmt.Errorf("invalid month %d: want 1 to 12", m)
	}
	return Period{Year: y, Month: time.Month(m)}, nil
}
