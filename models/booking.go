package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
	StatusCompleted BookingStatus = "completed"
)

type Booking struct {
	gorm.Model
	Code      string  `json:"code" gorm:"unique"`
	RenterID  uint    `json:"renter_id" gorm:"index"`
	Renter    User    `json:"renter,omitempty" gorm:"foreignKey:RenterID"`
	VehicleID uint    `json:"vehicle_id" gorm:"index"`
	Vehicle   Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	CompanyID uint    `json:"company_id" gorm:"index"`
	Company   Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	DriverID  *uint   `json:"driver_id,omitempty"`
	Driver    *Driver `json:"driver,omitempty" gorm:"foreignKey:DriverID"`

	FromDate  time.Time `json:"from_date"`
	ToDate    time.Time `json:"to_date"`
	FromTime  string    `json:"from_time"` // "HH:MM"
	ToTime    string    `json:"to_time"`
	Intercity bool      `json:"intercity"`
	CityName  string    `json:"city_name"`

	BookedDays    int   `json:"booked_days"`
	BookedHours   int   `json:"booked_hours"`
	VehicleAmount int64 `json:"vehicle_amount"`
	DriverAmount  int64 `json:"driver_amount"`
	TotalAmount   int64 `json:"total_amount"`

	Status          BookingStatus `json:"status"`
	PaymentIntentID string        `json:"payment_intent_id,omitempty"`
	PaymentStatus   string        `json:"payment_status,omitempty"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}

// CanTransition reports whether a booking may move between the two
// statuses. Pending bookings are confirmed or canceled, confirmed bookings
// are completed or canceled, and completed/canceled are terminal.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCanceled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCanceled
	default:
		return false
	}
}

// UpdateStatus applies a status transition and saves the booking, or
// rejects an invalid transition.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if !CanTransition(b.Status, newStatus) {
		return fmt.Errorf("invalid transition from %s to %s", b.Status, newStatus)
	}
	b.Status = newStatus
	return tx.Save(b).Error
}
