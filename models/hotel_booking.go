package models

import (
	"time"

	"gorm.io/datatypes"
)

type HotelBooking struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ReferenceCode string    `gorm:"column:reference_code;size:64" json:"reference_code"`
	CheckInDate   time.Time `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate  time.Time `gorm:"column:check_out_date" json:"check_out_date"`
	BookingDate   time.Time `gorm:"column:booking_date" json:"booking_date"`
	TotalPrice    float64   `gorm:"column:total_price" json:"total_price"`
	NumOfGuests   int       `gorm:"column:num_of_guests" json:"numOfGuests"`
	UserID        uint      `gorm:"not null;index;column:user_id" json:"user_id"`

	// Names of accompanying guests, free-form. Optional.
	GuestNames datatypes.JSON `gorm:"column:guest_names" json:"guest_names,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Rooms []Room `gorm:"many2many:booking_rooms;constraint:OnDelete:CASCADE" json:"rooms"`
}
