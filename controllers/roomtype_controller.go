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

type RoomTypeController struct {
	Svc *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{Svc: svc}
}

type createRoomTypesRequest struct {
	HotelID uint                     `json:"hotel_id" binding:"required"`
	Rooms   []services.RoomTypeInput `json:"rooms" binding:"required"`
}

func (ctl *RoomTypeController) CreateRoomTypes(c *gin.Context) {
	var req createRoomTypesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error())
		return
	}

	types, err := ctl.Svc.CreateBatch(req.HotelID, req.Rooms)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Hotel with id %d not found", req.HotelID))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, types)
}

func (ctl *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := ctl.Svc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if len(types) == 0 {
		utils.JSONError(c, http.StatusNotFound, "No room types found")
		return
	}
	c.JSON(http.StatusOK, types)
}

func (ctl *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch services.RoomTypePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error())
		return
	}

	rt, err := ctl.Svc.Patch(id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room type with id %d not found", id))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, rt)
}

func (ctl *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := ctl.Svc.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room type with id %d not found", id))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Room type deleted")
}
