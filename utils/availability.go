package utils

import (
	"time"

	"github.com/tyrehub/tyrehub-api/models"
)

// The booking surface operates on a fixed hourly grid from 08:00 to
// 18:00 inclusive. Slot definitions may be finer-grained than the grid;
// a probe is available when any slot window contains it.
const (
	FirstProbeHour = 8
	LastProbeHour  = 18
)

// ResolvedSlot is one concrete date+time instance of the weekly
// template with live booking counts. It is computed, never persisted.
type ResolvedSlot struct {
	Date         string `json:"date"` // YYYY-MM-DD
	Time         string `json:"time"` // HH:MM
	Available    bool   `json:"available"`
	MaxBookings  int    `json:"max_bookings"`
	BookingCount int    `json:"booking_count"`
}

// ResolveDaySlots crosses the weekly template with the day's existing
// bookings. For each hourly probe t: available iff some slot on that
// weekday has start <= t < end; capacity comes from the first matching
// slot; the booking count is the number of appointments starting in
// [t, t+1h). Bookings are counted whether or not they still match a
// current slot definition, and regardless of status — existing rows are
// ground truth for capacity.
func ResolveDaySlots(date time.Time, week models.WeekSchedule, appointments []models.Appointment) []ResolvedSlot {
	daySlots := week[models.DayName(date)]
	dateStr := date.Format("2006-01-02")

	resolved := make([]ResolvedSlot, 0, LastProbeHour-FirstProbeHour+1)
	for hour := FirstProbeHour; hour <= LastProbeHour; hour++ {
		probe := ResolvedSlot{
			Date: dateStr,
			Time: time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC).Format("15:04"),
		}

		minutes := hour * 60
		for _, slot := range daySlots {
			if slot.Contains(minutes) {
				probe.Available = true
				probe.MaxBookings = slot.MaxBookings
				break
			}
		}

		windowStart := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
		windowEnd := windowStart.Add(time.Hour)
		for _, a := range appointments {
			if !a.AppointmentTime.Before(windowStart) && a.AppointmentTime.Before(windowEnd) {
				probe.BookingCount++
			}
		}

		resolved = append(resolved, probe)
	}
	return resolved
}
