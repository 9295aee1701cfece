package services

import (
	"fmt"
	"time"

	"github.com/collectly/backoffice_backend/internal/apperrors"
)

// monthBounds returns the first and last calendar day of (year, month).
// Month is 1-indexed.
func monthBounds(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: month %d out of range", apperrors.ErrValidation, month)
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last, nil
}

// dateForDay builds the calendar date for a day-of-month within (year, month).
// Rejects days past the end of the month instead of letting them roll over.
func dateForDay(year, month, day int) (time.Time, error) {
	first, last, err := monthBounds(year, month)
	if err != nil {
		return time.Time{}, err
	}
	if day < 1 || day > last.Day() {
		return time.Time{}, fmt.Errorf("%w: day %d out of range for %d-%02d", apperrors.ErrValidation, day, year, month)
	}
	return first.AddDate(0, 0, day-1), nil
}
