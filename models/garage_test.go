package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGarageStartsWithEmptyWeek(t *testing.T) {
	db := testDB(t)

	g := Garage{Name: "North End Tyres", OwnerID: 1}
	require.NoError(t, db.Create(&g).Error)

	var reloaded Garage
	require.NoError(t, db.First(&reloaded, g.ID).Error)
	require.NotNil(t, reloaded.Schedule)
	assert.Len(t, reloaded.Schedule, 7)
	for _, day := range WeekDays {
		assert.Empty(t, reloaded.Schedule[day])
	}
}

// Full-replace round trip: saving a schedule and reading it back
// returns the same template.
func TestScheduleRoundTrip(t *testing.T) {
	db := testDB(t)

	g := Garage{Name: "Hilltop Garage", OwnerID: 1}
	require.NoError(t, db.Create(&g).Error)

	week := EmptyWeek()
	week["monday"] = DaySlots{
		{StartTime: "08:00", EndTime: "12:00", MaxBookings: 2},
		{StartTime: "13:00", EndTime: "18:00", MaxBookings: 3},
	}
	week["saturday"] = DaySlots{
		{StartTime: "09:00", EndTime: "13:00", MaxBookings: 1},
	}
	require.NoError(t, week.Validate())

	require.NoError(t, db.Model(&g).Update("schedule", week).Error)

	var reloaded Garage
	require.NoError(t, db.First(&reloaded, g.ID).Error)
	assert.Equal(t, week, reloaded.Schedule)
}

func TestGarageOwnership(t *testing.T) {
	g := Garage{OwnerID: 7}
	assert.True(t, g.OwnedBy(7))
	assert.False(t, g.OwnedBy(8))
}
