package services

import (
	"dhonveli-backend/models"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// Create relies on the foreign keys for user/hotel integrity; a dangling
// reference comes back as a constraint error the controller maps to 409.
func (s *ReviewService) Create(review *models.Review) error {
	return s.DB.Create(review).Error
}

func (s *ReviewService) GetAll() ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.Preload("User").Preload("Hotel").Order("id").Find(&reviews).Error
	return reviews, err
}

func (s *ReviewService) Delete(id uint) error {
	result := s.DB.Delete(&models.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
