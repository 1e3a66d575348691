package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyrehub/tyrehub-api/models"
)

func slotAt(slots []ResolvedSlot, clock string) ResolvedSlot {
	for _, s := range slots {
		if s.Time == clock {
			return s
		}
	}
	return ResolvedSlot{}
}

func TestResolveDaySlotsGrid(t *testing.T) {
	week := models.EmptyWeek()
	// 2024-06-03 is a Monday.
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	slots := ResolveDaySlots(date, week, nil)
	require.Len(t, slots, 11, "hourly probes 08:00 through 18:00 inclusive")
	assert.Equal(t, "08:00", slots[0].Time)
	assert.Equal(t, "18:00", slots[len(slots)-1].Time)
	for _, s := range slots {
		assert.Equal(t, "2024-06-03", s.Date)
		assert.False(t, s.Available, "empty template has no bookable probes")
	}
}

func TestResolveDaySlotsAvailability(t *testing.T) {
	week := models.EmptyWeek()
	week["monday"] = models.DaySlots{
		{StartTime: "08:00", EndTime: "10:00", MaxBookings: 2},
	}
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	slots := ResolveDaySlots(date, week, nil)

	// A probe is available iff some slot has start <= t < end.
	eight := slotAt(slots, "08:00")
	assert.True(t, eight.Available)
	assert.Equal(t, 2, eight.MaxBookings)

	nine := slotAt(slots, "09:00")
	assert.True(t, nine.Available)
	assert.Equal(t, 2, nine.MaxBookings)

	ten := slotAt(slots, "10:00")
	assert.False(t, ten.Available, "end boundary is exclusive")
	assert.Equal(t, 0, ten.MaxBookings)

	// Tuesday has no slots; the same template yields nothing bookable.
	tuesday := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	for _, s := range ResolveDaySlots(tuesday, week, nil) {
		assert.False(t, s.Available)
	}
}

func TestResolveDaySlotsFirstMatchingSlotWins(t *testing.T) {
	week := models.EmptyWeek()
	week["monday"] = models.DaySlots{
		{StartTime: "08:00", EndTime: "09:30", MaxBookings: 2},
		{StartTime: "09:30", EndTime: "11:00", MaxBookings: 5},
	}
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	slots := ResolveDaySlots(date, week, nil)
	// 09:00 falls in the first slot even though a finer-grained second
	// slot starts within the same probe hour.
	assert.Equal(t, 2, slotAt(slots, "09:00").MaxBookings)
	assert.Equal(t, 5, slotAt(slots, "10:00").MaxBookings)
}

func TestResolveDaySlotsBookingCounts(t *testing.T) {
	week := models.EmptyWeek()
	week["monday"] = models.DaySlots{
		{StartTime: "08:00", EndTime: "18:00", MaxBookings: 4},
	}
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	at := func(hour, minute int) time.Time {
		return time.Date(2024, 6, 3, hour, minute, 0, 0, time.UTC)
	}
	bookings := []models.Appointment{
		{GarageID: 1, AppointmentTime: at(9, 15)},
		{GarageID: 1, AppointmentTime: at(9, 45)},
		{GarageID: 1, AppointmentTime: at(10, 5)},
	}

	slots := ResolveDaySlots(date, week, bookings)

	// Counting window is [t, t+1h).
	assert.Equal(t, 2, slotAt(slots, "09:00").BookingCount)
	assert.Equal(t, 1, slotAt(slots, "10:00").BookingCount)
	assert.Equal(t, 0, slotAt(slots, "11:00").BookingCount)
}

// Bookings that no longer line up with any current slot definition
// still count: existing rows are ground truth for capacity.
func TestResolveDaySlotsCountsOrphanedBookings(t *testing.T) {
	week := models.EmptyWeek() // schedule was since cleared
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	bookings := []models.Appointment{
		{GarageID: 1, AppointmentTime: time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)},
	}

	slots := ResolveDaySlots(date, week, bookings)
	two := slotAt(slots, "14:00")
	assert.False(t, two.Available)
	assert.Equal(t, 1, two.BookingCount)
}
