package services

import (
	"dhonveli-backend/models"

	"gorm.io/gorm"
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

// RoomTypeInput is one entry of the batch create payload.
type RoomTypeInput struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	BedCount int     `json:"bed_count"`
	Quantity int     `json:"quantity"`
}

// CreateBatch inserts one RoomType per entry under the given hotel.
// Returns gorm.ErrRecordNotFound when the hotel does not exist.
func (s *RoomTypeService) CreateBatch(hotelID uint, rows []RoomTypeInput) ([]models.RoomType, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, hotelID).Error; err != nil {
		return nil, err
	}

	types := make([]models.RoomType, 0, len(rows))
	for _, row := range rows {
		types = append(types, models.RoomType{
			Name:     row.Name,
			Price:    row.Price,
			BedCount: row.BedCount,
			Quantity: row.Quantity,
			HotelID:  hotelID,
		})
	}
	if len(types) == 0 {
		return types, nil
	}
	if err := s.DB.Create(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (s *RoomTypeService) GetAll() ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.Order("id").Find(&types).Error
	return types, err
}

type RoomTypePatch struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	BedCount *int     `json:"bed_count"`
}

func (s *RoomTypeService) Patch(id uint, patch RoomTypePatch) (*models.RoomType, error) {
	var rt models.RoomType
	if err := s.DB.First(&rt, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.BedCount != nil {
		updates["bed_count"] = *patch.BedCount
	}
	if len(updates) == 0 {
		return &rt, nil
	}

	if err := s.DB.Model(&rt).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func (s *RoomTypeService) Delete(id uint) error {
	result := s.DB.Delete(&models.RoomType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
