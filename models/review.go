package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating      float64 `json:"rating" gorm:"type:decimal(2,1);not null"`
	Comment     string  `json:"comment"`
	VehicleID   uint    `json:"vehicle_id" gorm:"index"`
	Vehicle     Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	RenterID    uint    `json:"renter_id"`
	Renter      User    `json:"renter,omitempty" gorm:"foreignKey:RenterID"`
	IsAnonymous bool    `json:"is_anonymous" gorm:"default:false"`
	IsVerified  bool    `json:"is_verified" gorm:"default:false"` // review from a completed booking
	BookingID   *uint   `json:"booking_id,omitempty"`
}

// BeforeCreate clamps the rating into 1.0..5.0
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1.0 {
		r.Rating = 1.0
	} else if r.Rating > 5.0 {
		r.Rating = 5.0
	}
	return nil
}

// HasExistingReview checks whether this renter has already reviewed the
// vehicle.
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("renter_id = ? AND vehicle_id = ? AND deleted_at IS NULL", r.RenterID, r.VehicleID).
		Count(&count).Error
	return count > 0, err
}
