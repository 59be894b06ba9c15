package models

import "time"

// Hotel.RoomCount is a denormalized counter maintained by the room
// handlers (create +1, delete -1). It is not recomputed from rooms.
type Hotel struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:100" json:"name"`
	RoomCount int    `gorm:"column:room_count;default:0" json:"room_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RoomTypes []RoomType `gorm:"foreignKey:HotelID" json:"room_types,omitempty"`
}
