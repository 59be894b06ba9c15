package models

import "time"

type Review struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Rating   int       `json:"rating"`
	Review   string    `gorm:"column:review;type:text" json:"review"`
	DateTime time.Time `gorm:"column:date_time;autoCreateTime" json:"date_time"`
	UserID   uint      `gorm:"not null;index;column:user_id" json:"user_id"`
	HotelID  uint      `gorm:"not null;index;column:hotel_id" json:"hotel_id"`

	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Hotel *Hotel `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"hotel,omitempty"`
}
