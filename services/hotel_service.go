package services

import (
	"dhonveli-backend/models"

	"gorm.io/gorm"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// Create inserts a hotel with an empty room counter. Room types are
// attached through their own endpoint.
func (s *HotelService) Create(hotel *models.Hotel) error {
	hotel.RoomCount = 0
	return s.DB.Create(hotel).Error
}

func (s *HotelService) GetAll() ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.DB.Preload("RoomTypes").Order("id").Find(&hotels).Error
	return hotels, err
}
