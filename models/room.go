package models

type Room struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	RoomNumber string `gorm:"column:room_number;size:50" json:"room_number"`
	Occupied   bool   `gorm:"default:false" json:"occupied"`
	RoomTypeID uint   `gorm:"not null;index;column:room_type_id" json:"room_type_id"`

	RoomType *RoomType      `gorm:"foreignKey:RoomTypeID;constraint:OnDelete:CASCADE" json:"room_type,omitempty"`
	Bookings []HotelBooking `gorm:"many2many:booking_rooms;constraint:OnDelete:CASCADE" json:"-"`
}
