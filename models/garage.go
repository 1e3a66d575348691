package models

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotAuthorized = errors.New("caller does not own this garage")

// Garage is a service location owning a tyre inventory and a weekly
// schedule. The schedule is created all-empty with the garage and is
// only ever replaced as a whole by the owner.
type Garage struct {
	gorm.Model
	Name     string       `json:"name"`
	Address  string       `json:"address"`
	City     string       `json:"city"`
	Phone    string       `json:"phone"`
	OwnerID  uint         `json:"owner_id"`
	Owner    User         `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Schedule WeekSchedule `json:"schedule" gorm:"type:jsonb"`
	Tyres    []Tyre       `json:"tyres,omitempty" gorm:"foreignKey:GarageID"`
}

func (g *Garage) BeforeCreate(tx *gorm.DB) error {
	if g.Schedule == nil {
		g.Schedule = EmptyWeek()
	}
	return nil
}

// OwnedBy reports whether the given user may mutate this garage.
func (g *Garage) OwnedBy(userID uint) bool {
	return g.OwnerID == userID
}
