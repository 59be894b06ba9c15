package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"dhonveli-backend/services"
	"dhonveli-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RoomController struct {
	Svc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{Svc: svc}
}

type createRoomRequest struct {
	HotelID   uint               `json:"hotel_id" binding:"required"`
	HotelRoom services.RoomInput `json:"hotel_room" binding:"required"`
}

func (ctl *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error())
		return
	}

	room, err := ctl.Svc.Create(req.HotelID, req.HotelRoom)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Hotel with id %d not found", req.HotelID))
			return
		}
		if utils.IsIntegrityViolation(err) {
			utils.JSONError(c, http.StatusConflict, "Room references a missing room type")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (ctl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctl.Svc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if len(rooms) == 0 {
		utils.JSONError(c, http.StatusNotFound, "No rooms found")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (ctl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch services.RoomPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error())
		return
	}

	room, err := ctl.Svc.Patch(id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room with id %d not found", id))
			return
		}
		if utils.IsIntegrityViolation(err) {
			utils.JSONError(c, http.StatusConflict, "Room references a missing room type")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, room)
}

func (ctl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := ctl.Svc.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room with id %d not found", id))
			return
		}
		if utils.IsIntegrityViolation(err) {
			utils.JSONError(c, http.StatusConflict, "Room is still referenced by a booking")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Room deleted")
}
