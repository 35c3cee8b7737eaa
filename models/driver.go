package models

import (
	"gorm.io/gorm"

	"github.com/sheikhBasit/carRental-sub002/availability"
)

// Driver is a chauffeur employed by a rental company. A booking may
// optionally include one; the driver is billed per day and per hour on top
// of the vehicle rent.
type Driver struct {
	gorm.Model
	CompanyID     uint    `json:"company_id" gorm:"index"`
	Company       Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Name          string  `json:"name"`
	LicenseNumber string  `json:"license_number" gorm:"unique"`
	Phone         string  `json:"phone"`
	Age           int     `json:"age"`
	Experience    int     `json:"experience"` // years of driving
	ImageURL      string  `json:"image_url"`
	DailyRate     int64   `json:"daily_rate"`
	HourlyRate    int64   `json:"hourly_rate"`

	AvailableDays string `json:"available_days"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`

	BlackoutPeriods []BlackoutPeriod `json:"blackout_periods,omitempty" gorm:"foreignKey:DriverID"`
}

// Schedule implements availability.Bookable.
func (d *Driver) Schedule() availability.Schedule {
	return availability.Schedule{
		Days:      availability.ParseDays(d.AvailableDays),
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
	}
}

// Blackouts implements availability.Bookable.
func (d *Driver) Blackouts() []availability.Blackout {
	out := make([]availability.Blackout, 0, len(d.BlackoutPeriods))
	for _, b := range d.BlackoutPeriods {
		out = append(out, availability.Blackout{From: b.From, To: b.To})
	}
	return out
}

// Rates bundles the driver's charges for price computation.
func (d *Driver) Rates() availability.DriverRates {
	return availability.DriverRates{Daily: d.DailyRate, Hourly: d.HourlyRate}
}
