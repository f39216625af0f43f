package aggregation

import (
	"time"

	"github.com/MKhiriev/mood-journal/models"
)

// PublicWindowDays is the length of the public board look-back.
const PublicWindowDays = 7

// MonthRange returns the first and the last calendar day of month in year.
// The last day follows the real calendar, so February of a leap year ends on
// the 29th.
func MonthRange(year int, month time.Month) (first, last models.Date) {
	first = models.NewDate(year, month, 1)
	// day 0 of the next month normalises to the last day of this one
	last = models.NewDate(year, month+1, 0)
	return first, last
}

// PublicWindow returns the inclusive day range [today-7, today] of the public
// board, where today is the calendar day of now in now's location.
func PublicWindow(now time.Time) (start, end models.Date) {
	end = models.DateOf(now)
	start = end.AddDays(-PublicWindowDays)
	return start, end
}
