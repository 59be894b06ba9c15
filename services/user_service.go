package services

import (
	"fmt"

	"dhonveli-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Create hashes the password before the row is written. The plaintext is
// never stored.
func (s *UserService) Create(user *models.User) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hash)

	if user.Role == "" {
		user.Role = "normal"
	}
	return s.DB.Create(user).Error
}

func (s *UserService) GetAll() ([]models.User, error) {
	var users []models.User
	err := s.DB.Order("id").Find(&users).Error
	return users, err
}

func (s *UserService) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UserPatch applies a field when its pointer is non-nil, so a provided
// zero (loyalty_points = 0) overwrites the column.
type UserPatch struct {
	Role          *string `json:"role"`
	LoyaltyPoints *int    `json:"loyalty_points"`
}

func (s *UserService) Patch(username string, patch UserPatch) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Role != nil {
		updates["role"] = *patch.Role
	}
	if patch.LoyaltyPoints != nil {
		updates["loyalty_points"] = *patch.LoyaltyPoints
	}
	if len(updates) == 0 {
		return &user, nil
	}

	if err := s.DB.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
