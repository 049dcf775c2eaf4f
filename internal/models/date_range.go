package models

import (
	"errors"
	"time"
)

var ErrInvalidDateRange = errors.New("check_out_date must be after check_in_date")

// DateRange is an inclusive [check-in .. check-out] stay interval at calendar-day
// granularity. A checkout on day X still occupies day X: the historical booking
// system treated a shared boundary date as a conflict, and that policy is kept.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewDateRange truncates both endpoints to midnight UTC and requires the
// check-out date to fall strictly after the check-in date.
func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	r := DateRange{CheckIn: toDate(checkIn), CheckOut: toDate(checkOut)}
	if !r.CheckOut.After(r.CheckIn) {
		return DateRange{}, ErrInvalidDateRange
	}
	return r, nil
}

// Overlaps reports whether the two ranges share at least one calendar day.
// Endpoint-inclusive: [06-15, 06-20] overlaps [06-20, 06-25].
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.CheckIn.After(other.CheckOut) && !other.CheckIn.After(r.CheckOut)
}

// Nights returns the number of nights covered by the range.
func (r DateRange) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
