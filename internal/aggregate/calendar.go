package aggregate

import (
	"time"

	"github.com/everafterhq/everafter/internal/models"
)

// AppointmentsOn returns the appointments whose calendar day equals day
// (YYYY-MM-DD). Matching is exact calendar-day equality: the appointment's
// time-of-day field and any time suffix accidentally stored on the date are
// ignored. Input order is preserved.
func AppointmentsOn(appointments []models.Appointment, day string) []models.Appointment {
	want := calendarDay(day)
	if want == "" {
		return nil
	}

	var matched []models.Appointment
	for _, a := range appointments {
		if calendarDay(a.Date) == want {
			matched = append(matched, a)
		}
	}
	return matched
}

// AppointmentsOnDate is AppointmentsOn with the selected day taken from a
// time.Time in its own location.
func AppointmentsOnDate(appointments []models.Appointment, day time.Time) []models.Appointment {
	return AppointmentsOn(appointments, day.Format("2006-01-02"))
}

// calendarDay extracts the YYYY-MM-DD prefix of a date string, dropping any
// "T15:04..." or " 15:04..." suffix. Returns "" for malformed input.
func calendarDay(s string) string {
	if len(s) < 10 {
		return ""
	}
	if len(s) > 10 && s[10] != 'T' && s[10] != ' ' {
		return ""
	}
	day := s[:10]
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return ""
	}
	return day
}
