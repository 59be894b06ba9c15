package models

import "time"

type User struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Username      string `gorm:"uniqueIndex;size:50" json:"username"`
	Password      string `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Email         string `gorm:"uniqueIndex;size:150" json:"email"`
	LoyaltyPoints int    `gorm:"column:loyalty_points;default:0" json:"loyalty_points"`
	Role          string `gorm:"size:50;default:normal" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Tickets  []ActivityTicket `gorm:"foreignKey:UserID" json:"tickets,omitempty"`
	Bookings []HotelBooking   `gorm:"foreignKey:UserID" json:"bookings,omitempty"`
}
