package models

type Activity struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `json:"price"`

	Tickets []ActivityTicket `gorm:"foreignKey:ActivityID" json:"tickets,omitempty"`
}
