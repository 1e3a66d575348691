package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlotValidate(t *testing.T) {
	assert.NoError(t, TimeSlot{StartTime: "08:00", EndTime: "10:00", MaxBookings: 2}.Validate())

	// Inverted and zero-length intervals are rejected before any overlap test.
	assert.ErrorIs(t, TimeSlot{StartTime: "10:00", EndTime: "08:00", MaxBookings: 1}.Validate(), ErrInvalidInterval)
	assert.ErrorIs(t, TimeSlot{StartTime: "09:00", EndTime: "09:00", MaxBookings: 1}.Validate(), ErrInvalidInterval)

	assert.ErrorIs(t, TimeSlot{StartTime: "08:00", EndTime: "10:00", MaxBookings: 0}.Validate(), ErrInvalidCapacity)
	assert.ErrorIs(t, TimeSlot{StartTime: "8am", EndTime: "10:00", MaxBookings: 1}.Validate(), ErrInvalidClock)
	assert.ErrorIs(t, TimeSlot{StartTime: "25:00", EndTime: "26:00", MaxBookings: 1}.Validate(), ErrInvalidClock)
}

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, minutes)

	_, err = ParseClock("9:3:0")
	assert.ErrorIs(t, err, ErrInvalidClock)
}

func TestOverlapDetection(t *testing.T) {
	base := TimeSlot{StartTime: "09:00", EndTime: "11:00", MaxBookings: 1}

	cases := []struct {
		name      string
		candidate TimeSlot
		overlaps  bool
	}{
		{"identical", TimeSlot{StartTime: "09:00", EndTime: "11:00"}, true},
		{"contained", TimeSlot{StartTime: "09:30", EndTime: "10:30"}, true},
		{"straddles start", TimeSlot{StartTime: "08:00", EndTime: "09:30"}, true},
		{"straddles end", TimeSlot{StartTime: "10:30", EndTime: "12:00"}, true},
		{"touching before", TimeSlot{StartTime: "07:00", EndTime: "09:00"}, false},
		{"touching after", TimeSlot{StartTime: "11:00", EndTime: "13:00"}, false},
		{"disjoint", TimeSlot{StartTime: "14:00", EndTime: "16:00"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, base.Overlaps(tc.candidate))
			assert.Equal(t, tc.overlaps, tc.candidate.Overlaps(base))
		})
	}
}

func TestDaySlotsAddRejectsOverlapUnchanged(t *testing.T) {
	day := DaySlots{}
	day, err := day.Add(TimeSlot{StartTime: "08:00", EndTime: "10:00", MaxBookings: 2})
	require.NoError(t, err)

	before := make(DaySlots, len(day))
	copy(before, day)

	// A: 08:00-10:00, B: 09:00-11:00 -> A.start < B.end && B.start < A.end
	_, err = day.Add(TimeSlot{StartTime: "09:00", EndTime: "11:00", MaxBookings: 1})
	assert.ErrorIs(t, err, ErrSlotOverlap)
	assert.Equal(t, before, day, "rejected insert must leave the day unchanged")
}

func TestDaySlotsAddKeepsSorted(t *testing.T) {
	day := DaySlots{}
	var err error
	for _, slot := range []TimeSlot{
		{StartTime: "14:00", EndTime: "16:00", MaxBookings: 1},
		{StartTime: "08:00", EndTime: "10:00", MaxBookings: 1},
		{StartTime: "11:00", EndTime: "12:00", MaxBookings: 1},
	} {
		day, err = day.Add(slot)
		require.NoError(t, err)
	}

	require.Len(t, day, 3)
	assert.Equal(t, "08:00", day[0].StartTime)
	assert.Equal(t, "11:00", day[1].StartTime)
	assert.Equal(t, "14:00", day[2].StartTime)
}

func TestWeekValidate(t *testing.T) {
	week := EmptyWeek()
	week["monday"] = DaySlots{
		{StartTime: "13:00", EndTime: "15:00", MaxBookings: 1},
		{StartTime: "08:00", EndTime: "10:00", MaxBookings: 2},
	}
	require.NoError(t, week.Validate())
	// Validate sorts each day by start time.
	assert.Equal(t, "08:00", week["monday"][0].StartTime)

	week["tuesday"] = DaySlots{
		{StartTime: "08:00", EndTime: "10:00", MaxBookings: 1},
		{StartTime: "09:00", EndTime: "11:00", MaxBookings: 1},
	}
	assert.ErrorIs(t, week.Validate(), ErrSlotOverlap)

	bad := WeekSchedule{"funday": DaySlots{}}
	assert.ErrorIs(t, bad.Validate(), ErrUnknownDay)
}

func TestCopyDay(t *testing.T) {
	week := EmptyWeek()
	week["monday"] = DaySlots{
		{StartTime: "08:00", EndTime: "12:00", MaxBookings: 3},
	}
	week["tuesday"] = DaySlots{
		{StartTime: "14:00", EndTime: "16:00", MaxBookings: 1},
	}

	require.NoError(t, week.CopyDay("monday", "tuesday"))
	assert.Equal(t, week["monday"], week["tuesday"])

	// The copy is independent of the source day.
	week["monday"][0].MaxBookings = 99
	assert.Equal(t, 3, week["tuesday"][0].MaxBookings)
}

func TestCopyDaySameDay(t *testing.T) {
	week := EmptyWeek()
	assert.ErrorIs(t, week.CopyDay("monday", "monday"), ErrSameDay)
	assert.ErrorIs(t, week.CopyDay("monday", "caturday"), ErrUnknownDay)
}
