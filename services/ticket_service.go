package services

import (
	"errors"
	"fmt"
	"time"

	"dhonveli-backend/models"

	"gorm.io/gorm"
)

type TicketService struct {
	DB *gorm.DB
}

func NewTicketService(db *gorm.DB) *TicketService {
	return &TicketService{DB: db}
}

// ActivityMissingError names the first activity id of a ticket batch that
// did not resolve to a row.
type ActivityMissingError struct {
	ID uint
}

func (e *ActivityMissingError) Error() string {
	return fmt.Sprintf("Activity with id %d not found", e.ID)
}

type TicketInput struct {
	ActivityID uint    `json:"activity_id"`
	UserID     *uint   `json:"user_id"`
	TotalPrice float64 `json:"total_price"`
}

// CreateBatch inserts one ticket row per input entry, each stamped with
// its own booking time. The first entry referencing a missing activity
// aborts the request.
func (s *TicketService) CreateBatch(inputs []TicketInput) ([]models.ActivityTicket, error) {
	tickets := make([]models.ActivityTicket, 0, len(inputs))
	for _, in := range inputs {
		var activity models.Activity
		if err := s.DB.First(&activity, in.ActivityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &ActivityMissingError{ID: in.ActivityID}
			}
			return nil, err
		}

		ticket := models.ActivityTicket{
			BookingDate: time.Now().UTC(),
			TotalPrice:  in.TotalPrice,
			ActivityID:  in.ActivityID,
			UserID:      in.UserID,
		}
		if err := s.DB.Create(&ticket).Error; err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}

func (s *TicketService) GetAll() ([]models.ActivityTicket, error) {
	var tickets []models.ActivityTicket
	err := s.DB.
		Preload("Activity").
		Preload("User").
		Order("id").
		Find(&tickets).Error
	return tickets, err
}

func (s *TicketService) Delete(id uint) error {
	result := s.DB.Delete(&models.ActivityTicket{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
