package services

import (
	"dhonveli-backend/models"

	"gorm.io/gorm"
)

type ActivityService struct {
	DB *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{DB: db}
}

func (s *ActivityService) Create(activity *models.Activity) error {
	return s.DB.Create(activity).Error
}

func (s *ActivityService) GetAll() ([]models.Activity, error) {
	var activities []models.Activity
	err := s.DB.Order("id").Find(&activities).Error
	return activities, err
}

type ActivityPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

func (s *ActivityService) Patch(id uint, patch ActivityPatch) (*models.Activity, error) {
	var activity models.Activity
	if err := s.DB.First(&activity, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if len(updates) == 0 {
		return &activity, nil
	}

	if err := s.DB.Model(&activity).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *ActivityService) Delete(id uint) error {
	result := s.DB.Delete(&models.Activity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
