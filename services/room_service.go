package services

import (
	"dhonveli-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// RoomInput is the hotel_room part of the create payload.
type RoomInput struct {
	RoomNumber string `json:"room_number"`
	RoomTypeID uint   `json:"room_type_id"`
}

// Create inserts the room and bumps the hotel's room counter in one
// transaction. Returns gorm.ErrRecordNotFound when the hotel is missing;
// a bad room_type_id surfaces as a foreign-key violation.
func (s *RoomService) Create(hotelID uint, input RoomInput) (*models.Room, error) {
	room := models.Room{
		RoomNumber: input.RoomNumber,
		RoomTypeID: input.RoomTypeID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := tx.First(&hotel, hotelID).Error; err != nil {
			return err
		}
		if err := tx.Create(&room).Error; err != nil {
			return err
		}
		return tx.Model(&hotel).
			Update("room_count", gorm.Expr("room_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Preload("RoomType").Order("id").Find(&rooms).Error
	return rooms, err
}

// RoomPatch deliberately has no occupied field; the flag is only set by
// booking creation.
type RoomPatch struct {
	RoomNumber *string `json:"room_number"`
	RoomTypeID *uint   `json:"room_type_id"`
}

func (s *RoomService) Patch(id uint, patch RoomPatch) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.RoomNumber != nil {
		updates["room_number"] = *patch.RoomNumber
	}
	if patch.RoomTypeID != nil {
		updates["room_type_id"] = *patch.RoomTypeID
	}
	if len(updates) == 0 {
		return &room, nil
	}

	if err := s.DB.Model(&room).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// Delete removes the room and walks room -> room type -> hotel to take
// one off the hotel's counter. No floor at zero.
func (s *RoomService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			return err
		}

		var rt models.RoomType
		if err := tx.First(&rt, room.RoomTypeID).Error; err != nil {
			return err
		}

		if err := tx.Delete(&room).Error; err != nil {
			return err
		}
		return tx.Model(&models.Hotel{}).
			Where("id = ?", rt.HotelID).
			Update("room_count", gorm.Expr("room_count - 1")).Error
	})
}
