package models

import "time"

// ActivityTicket may be sold to a walk-in, so UserID is nullable.
type ActivityTicket struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BookingDate time.Time `gorm:"column:booking_date" json:"bookingDate"`
	TotalPrice  float64   `gorm:"column:total_price" json:"total_price"`
	ActivityID  uint      `gorm:"not null;index;column:activity_id" json:"activity_id"`
	UserID      *uint     `gorm:"index;column:user_id" json:"user_id,omitempty"`

	Activity *Activity `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE" json:"activity,omitempty"`
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
