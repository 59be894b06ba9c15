package models

// Guest is kept in the schema for the front desk's contact list.
// No handler reads or writes it yet.
type Guest struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	FullName    string `gorm:"column:full_name;size:255" json:"full_name"`
	Email       string `gorm:"uniqueIndex;size:150" json:"email"`
	PhoneNumber string `gorm:"column:phone_number;size:50" json:"phone_number"`
}
