package services

import (
	"errors"
	"fmt"
	"time"

	"dhonveli-backend/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// RoomMissingError names the first room id of a booking request that
// did not resolve to a row.
type RoomMissingError struct {
	ID uint
}

func (e *RoomMissingError) Error() string {
	return fmt.Sprintf("Room with id %d not found", e.ID)
}

// UserMissingError names a booking's user id that did not resolve.
type UserMissingError struct {
	ID uint
}

func (e *UserMissingError) Error() string {
	return fmt.Sprintf("User with id %d not found", e.ID)
}

type BookingInput struct {
	CheckInDate  time.Time
	CheckOutDate time.Time
	BookingDate  time.Time
	NumOfGuests  int
	TotalPrice   float64
	UserID       uint
	RoomIDs      []uint
	GuestNames   datatypes.JSON
}

// Create resolves each requested room in order and flags it occupied with
// an immediate update. A missing id aborts the whole request, but rooms
// already flagged before it stay occupied; the front desk reconciles those
// by hand today, so the write path must not hide them. The booking row and
// its room associations are then committed in one transaction.
func (s *BookingService) Create(input BookingInput) (*models.HotelBooking, error) {
	var user models.User
	if err := s.DB.First(&user, input.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &UserMissingError{ID: input.UserID}
		}
		return nil, err
	}

	rooms := make([]models.Room, 0, len(input.RoomIDs))
	for _, id := range input.RoomIDs {
		var room models.Room
		if err := s.DB.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &RoomMissingError{ID: id}
			}
			return nil, err
		}
		if err := s.DB.Model(&room).Update("occupied", true).Error; err != nil {
			return nil, err
		}
		room.Occupied = true
		rooms = append(rooms, room)
	}

	booking := models.HotelBooking{
		ReferenceCode: uuid.NewString(),
		CheckInDate:   input.CheckInDate,
		CheckOutDate:  input.CheckOutDate,
		BookingDate:   input.BookingDate,
		TotalPrice:    input.TotalPrice,
		NumOfGuests:   input.NumOfGuests,
		UserID:        input.UserID,
		GuestNames:    input.GuestNames,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Rooms").Create(&booking).Error; err != nil {
			return err
		}
		if len(rooms) == 0 {
			return nil
		}
		return tx.Model(&booking).Association("Rooms").Append(&rooms)
	})
	if err != nil {
		return nil, err
	}

	booking.Rooms = rooms
	return &booking, nil
}

// GetAll returns bookings with the user and every room nested down to its
// room type and hotel.
func (s *BookingService) GetAll() ([]models.HotelBooking, error) {
	var bookings []models.HotelBooking
	err := s.DB.
		Preload("User").
		Preload("Rooms.RoomType.Hotel").
		Order("id").
		Find(&bookings).Error
	return bookings, err
}
