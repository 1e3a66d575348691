package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCanceled  AppointmentStatus = "canceled"
	StatusCompleted AppointmentStatus = "completed"
)

var ErrMissingUser = errors.New("no resolvable user for booking")

// Appointment is a customer's fitting reservation against a garage's
// schedule. OrderID links the booking created at checkout; it is zero
// for bookings the garage owner creates directly.
type Appointment struct {
	gorm.Model
	GarageID        uint              `json:"garage_id"`
	Garage          Garage            `json:"garage" gorm:"foreignKey:GarageID"`
	UserID          uint              `json:"user_id"`
	User            User              `json:"user" gorm:"foreignKey:UserID"`
	OrderID         uint              `json:"order_id"`
	AppointmentTime time.Time         `json:"appointment_time"`
	Status          AppointmentStatus `json:"status"`
	Note            string            `json:"note"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// ValidStatus reports whether s is one of the four known statuses.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// SetStatus overwrites the booking status. Garage owners may move a
// booking to any status, including out of canceled or completed; the
// nominal lifecycle (pending -> confirmed -> completed, canceled from
// either) is what the UI exposes, but the mutation layer does not
// enforce it.
func (a *Appointment) SetStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	if !ValidStatus(newStatus) {
		return fmt.Errorf("invalid status %q", newStatus)
	}
	a.Status = newStatus
	return tx.Save(a).Error
}
