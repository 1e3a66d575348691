package models

import (
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderCompleted OrderStatus = "completed"
	OrderCanceled  OrderStatus = "canceled"
)

// Order is a storefront purchase against a single garage. The optional
// fitting appointment created at checkout points back via
// Appointment.OrderID.
type Order struct {
	gorm.Model
	Reference string      `json:"reference" gorm:"uniqueIndex"`
	UserID    uint        `json:"user_id"`
	User      User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	GarageID  uint        `json:"garage_id"`
	Garage    Garage      `json:"garage,omitempty" gorm:"foreignKey:GarageID"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"order_id"`
	TyreID    uint    `json:"tyre_id"`
	Tyre      Tyre    `json:"tyre,omitempty" gorm:"foreignKey:TyreID"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Status == "" {
		o.Status = OrderPending
	}
	return nil
}
