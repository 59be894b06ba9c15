package controllers

import (
	"errors"
	"net/http"
	"time"

	"dhonveli-backend/services"
	"dhonveli-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type BookingController struct {
	Svc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Svc: svc}
}

type createBookingRequest struct {
	CheckInDate  string         `json:"check_in_date" binding:"required"`
	CheckOutDate string         `json:"check_out_date" binding:"required"`
	BookingDate  string         `json:"booking_date" binding:"required"`
	NumOfGuests  int            `json:"numOfGuests"`
	TotalPrice   float64        `json:"total_price"`
	UserID       uint           `json:"user_id" binding:"required"`
	RoomIDs      []uint         `json:"room_ids" binding:"required"`
	GuestNames   datatypes.JSON `json:"guest_names"`
}

// parseBookingDate accepts ISO-8601 timestamps ("Z" or numeric offsets)
// and bare dates.
func parseBookingDate(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error())
		return
	}

	checkIn, err := parseBookingDate(req.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid check_in_date: "+err.Error())
		return
	}
	checkOut, err := parseBookingDate(req.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid check_out_date: "+err.Error())
		return
	}
	bookingDate, err := parseBookingDate(req.BookingDate)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid booking_date: "+err.Error())
		return
	}

	booking, err := ctl.Svc.Create(services.BookingInput{
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		BookingDate:  bookingDate,
		NumOfGuests:  req.NumOfGuests,
		TotalPrice:   req.TotalPrice,
		UserID:       req.UserID,
		RoomIDs:      req.RoomIDs,
		GuestNames:   req.GuestNames,
	})
	if err != nil {
		var missingRoom *services.RoomMissingError
		var missingUser *services.UserMissingError
		if errors.As(err, &missingRoom) || errors.As(err, &missingUser) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		if utils.IsIntegrityViolation(err) {
			utils.JSONError(c, http.StatusConflict, "Booking violates a database constraint")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (ctl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctl.Svc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if len(bookings) == 0 {
		utils.JSONError(c, http.StatusNotFound, "No bookings found")
		return
	}
	c.JSON(http.StatusOK, bookings)
}
