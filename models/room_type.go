package models

type RoomType struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"size:100" json:"name"`
	Price    float64 `json:"price"`
	BedCount int     `gorm:"column:bed_count" json:"bed_count"`
	Quantity int     `json:"quantity"`
	HotelID  uint    `gorm:"not null;index;column:hotel_id" json:"hotel_id"`

	Hotel *Hotel `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"hotel,omitempty"`
	Rooms []Room `gorm:"foreignKey:RoomTypeID" json:"rooms,omitempty"`
}
