package models

import (
	"gorm.io/gorm"

	"github.com/sheikhBasit/carRental-sub002/availability"
)

type Vehicle struct {
	gorm.Model
	CompanyID          uint   `json:"company_id" gorm:"index"`
	Company            Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Manufacturer       string `json:"manufacturer"`
	ModelName          string `json:"model_name"`
	RegistrationNumber string `json:"registration_number" gorm:"unique"`
	City               string `json:"city" gorm:"index"`
	Seats              int    `json:"seats"`
	Transmission       string `json:"transmission"` // "auto" | "manual"
	FuelType           string `json:"fuel_type"`
	ImageURL           string `json:"image_url"`
	DailyRent          int64  `json:"daily_rent"` // whole currency units per booked day

	// Weekly availability: comma-separated weekday names plus a single
	// daily "HH:MM" window. All three empty means always bookable.
	AvailableDays string `json:"available_days"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`

	BlackoutPeriods []BlackoutPeriod `json:"blackout_periods,omitempty" gorm:"foreignKey:VehicleID"`
	Reviews         []Review         `json:"reviews,omitempty" gorm:"foreignKey:VehicleID"`
}

// Schedule implements availability.Bookable.
func (v *Vehicle) Schedule() availability.Schedule {
	return availability.Schedule{
		Days:      availability.ParseDays(v.AvailableDays),
		StartTime: v.StartTime,
		EndTime:   v.EndTime,
	}
}

// Blackouts implements availability.Bookable.
func (v *Vehicle) Blackouts() []availability.Blackout {
	out := make([]availability.Blackout, 0, len(v.BlackoutPeriods))
	for _, b := range v.BlackoutPeriods {
		out = append(out, availability.Blackout{From: b.From, To: b.To})
	}
	return out
}
