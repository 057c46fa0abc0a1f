package utils

import (
	"fmt"
	"strings"
	"time"
)

const noPeriod = "—"

func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05 -0700 MST")
}

func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// ValidatePeriod checks a start/end pair: an end date needs a start date and
// may not precede it.
func ValidatePeriod(start, end *time.Time) *ValidationError {
	verr := &ValidationError{}
	if end != nil && start == nil {
		verr.Add("start_date", "A start date is required when an end date is given.")
		verr.Add("end_date", "Cannot be set without a start date.")
	}
	if start != nil && end != nil && start.After(*end) {
		verr.Add("end_date", "The end date cannot be earlier than the start date.")
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

// PeriodLength renders the span between start and end (today when end is
// nil) as "N years M months D days". Zero parts are skipped, except that a
// span shorter than a month is always shown in days.
func PeriodLength(start, end *time.Time, today time.Time) string {
	if start == nil {
		return noPeriod
	}
	to := today
	if end != nil {
		to = *end
	}
	from := truncateDay(*start)
	to = truncateDay(to)
	if to.Before(from) {
		return noPeriod
	}

	years, months, days := calendarDiff(from, to)

	var parts []string
	switch {
	case years > 0:
		parts = append(parts, plural(years, "year", "years"))
		if months > 0 {
			parts = append(parts, plural(months, "month", "months"))
		}
		if days > 0 {
			parts = append(parts, plural(days, "day", "days"))
		}
	case months > 0:
		parts = append(parts, plural(months, "month", "months"))
		if days > 0 {
			parts = append(parts, plural(days, "day", "days"))
		}
	default:
		parts = append(parts, plural(days, "day", "days"))
	}
	return strings.Join(parts, " ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// calendarDiff counts whole months from `from` (clipping to the end of
// shorter months) and the remaining days. from must not be after to.
func calendarDiff(from, to time.Time) (years, months, days int) {
	total := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	anchor := addMonthsClipped(from, total)
	if anchor.After(to) {
		total--
		anchor = addMonthsClipped(from, total)
	}
	days = int(to.Sub(anchor).Hours() / 24)
	return total / 12, total % 12, days
}

func addMonthsClipped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	lastDay := first.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
