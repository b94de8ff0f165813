// Package analytics contains spending-analytics use cases.
package analytics

import "time"

// PeriodKey names a reporting window relative to "now".
type PeriodKey string

const (
	// PeriodCurrent covers the current calendar month up to now.
	PeriodCurrent PeriodKey = "current"
	// PeriodLast3 covers the last three calendar months up to now.
	PeriodLast3 PeriodKey = "last3"
	// PeriodLast6 covers the last six calendar months up to now.
	PeriodLast6 PeriodKey = "last6"
	// PeriodYear covers the current calendar year up to now.
	PeriodYear PeriodKey = "year"
)

// DateRange is an inclusive date window with Start <= End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days returns the length of the range in days, rounding partial days up.
func (r DateRange) Days() int {
	d := r.End.Sub(r.Start)
	if d <= 0 {
		return 0
	}
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// ResolvePeriod maps a named reporting period to a concrete date range
// ending at now. Unknown keys fall back to the current month.
// AddDate on the first of the month handles year rollback, so last3
// resolved in February lands in the previous November.
func ResolvePeriod(key PeriodKey, now time.Time) DateRange {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	switch key {
	case PeriodLast3:
		return DateRange{Start: firstOfMonth.AddDate(0, -3, 0), End: now}
	case PeriodLast6:
		return DateRange{Start: firstOfMonth.AddDate(0, -6, 0), End: now}
	case PeriodYear:
		return DateRange{Start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), End: now}
	default:
		return DateRange{Start: firstOfMonth, End: now}
	}
}
