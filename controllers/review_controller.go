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

type ReviewController struct {
	Svc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: svc}
}

type createReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Review  string `json:"review"`
	UserID  uint   `json:"user_id" binding:"required"`
	HotelID uint   `json:"hotel_id" binding:"required"`
}

func (ctl *ReviewController) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error())
		return
	}

	review := models.Review{
		Rating:  req.Rating,
		Review:  req.Review,
		UserID:  req.UserID,
		HotelID: req.HotelID,
	}
	if err := ctl.Svc.Create(&review); err != nil {
		if utils.IsIntegrityViolation(err) {
			utils.JSONError(c, http.StatusConflict, "Review references a missing user or hotel")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (ctl *ReviewController) GetReviews(c *gin.Context) {
	reviews, err := ctl.Svc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if len(reviews) == 0 {
		utils.JSONError(c, http.StatusNotFound, "No reviews found")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (ctl *ReviewController) DeleteReview(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := ctl.Svc.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Review with id %d not found", id))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Review deleted")
}
