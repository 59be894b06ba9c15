package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"dhonveli-backend/models"
	"dhonveli-backend/services"
	"dhonveli-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ActivityController struct {
	Svc *services.ActivityService
}

func NewActivityController(svc *services.ActivityService) *ActivityController {
	return &ActivityController{Svc: svc}
}

type createActivityRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func (ctl *ActivityController) CreateActivity(c *gin.Context) {
	var req createActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error())
		return
	}

	activity := models.Activity{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := ctl.Svc.Create(&activity); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func (ctl *ActivityController) GetActivities(c *gin.Context) {
	activities, err := ctl.Svc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if len(activities) == 0 {
		utils.JSONError(c, http.StatusNotFound, "No activities found")
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (ctl *ActivityController) UpdateActivity(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch services.ActivityPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error())
		return
	}

	activity, err := ctl.Svc.Patch(id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Activity with id %d not found", id))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (ctl *ActivityController) DeleteActivity(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := ctl.Svc.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Activity with id %d not found", id))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Activity deleted")
}
