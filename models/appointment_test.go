package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&User{}, &Role{}, &Garage{}, &Tyre{}, &Order{}, &OrderItem{}, &Appointment{},
	))
	return db
}

func TestAppointmentDefaultsToPending(t *testing.T) {
	db := testDB(t)

	a := Appointment{GarageID: 1, UserID: 1, AppointmentTime: time.Now()}
	require.NoError(t, db.Create(&a).Error)
	assert.Equal(t, StatusPending, a.Status)
}

// Status changes are an unconditional overwrite: garage owners may set
// any target status from any current status. Reviving a canceled
// booking is permitted behavior, not a bug to guard against.
func TestAppointmentStatusIsPermissive(t *testing.T) {
	db := testDB(t)

	a := Appointment{GarageID: 1, UserID: 1, AppointmentTime: time.Now()}
	require.NoError(t, db.Create(&a).Error)

	require.NoError(t, a.SetStatus(db, StatusCanceled))
	assert.Equal(t, StatusCanceled, a.Status)

	// canceled -> confirmed succeeds.
	require.NoError(t, a.SetStatus(db, StatusConfirmed))
	assert.Equal(t, StatusConfirmed, a.Status)

	// completed -> pending also succeeds.
	require.NoError(t, a.SetStatus(db, StatusCompleted))
	require.NoError(t, a.SetStatus(db, StatusPending))

	var reloaded Appointment
	require.NoError(t, db.First(&reloaded, a.ID).Error)
	assert.Equal(t, StatusPending, reloaded.Status)
}

func TestAppointmentStatusRejectsUnknownValue(t *testing.T) {
	db := testDB(t)

	a := Appointment{GarageID: 1, UserID: 1, AppointmentTime: time.Now()}
	require.NoError(t, db.Create(&a).Error)

	err := a.SetStatus(db, AppointmentStatus("postponed"))
	assert.Error(t, err)
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusConfirmed))
	assert.True(t, ValidStatus(StatusCompleted))
	assert.True(t, ValidStatus(StatusCanceled))
	assert.False(t, ValidStatus("deleted"))
}
