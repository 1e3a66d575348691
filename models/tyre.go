package models

import (
	"gorm.io/gorm"
)

// Tyre is one inventory item in a garage's shop.
type Tyre struct {
	gorm.Model
	GarageID  uint    `json:"garage_id"`
	Garage    Garage  `json:"garage,omitempty" gorm:"foreignKey:GarageID"`
	Brand     string  `json:"brand"`
	ModelName string  `json:"model_name"`
	Size      string  `json:"size"`   // e.g. "205/55 R16"
	Season    string  `json:"season"` // "summer", "winter", "all_season"
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	ImageURL  string  `json:"image_url"`
}
