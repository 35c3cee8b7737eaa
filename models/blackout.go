package models

import (
	"time"

	"gorm.io/gorm"
)

// BlackoutPeriod is an absolute interval during which a vehicle or driver
// cannot be booked, regardless of its weekly availability. Exactly one of
// VehicleID/DriverID is set.
type BlackoutPeriod struct {
	gorm.Model
	VehicleID *uint     `json:"vehicle_id,omitempty" gorm:"index"`
	DriverID  *uint     `json:"driver_id,omitempty" gorm:"index"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	Remarks   string    `json:"remarks"`
}
