package controllers

import (
	"net/http"

	"dhonveli-backend/models"
	"dhonveli-backend/services"
	"dhonveli-backend/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	Svc *services.HotelService
}

func NewHotelController(svc *services.HotelService) *HotelController {
	return &HotelController{Svc: svc}
}

type createHotelRequest struct {
	Name string `json:"name" binding:"required"`
}

func (ctl *HotelController) CreateHotel(c *gin.Context) {
	var req createHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error())
		return
	}

	hotel := models.Hotel{Name: req.Name}
	if err := ctl.Svc.Create(&hotel); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

func (ctl *HotelController) GetHotels(c *gin.Context) {
	hotels, err := ctl.Svc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if len(hotels) == 0 {
		utils.JSONError(c, http.StatusNotFound, "No hotels found")
		return
	}
	c.JSON(http.StatusOK, hotels)
}
