package controllers

import (
	"errors"
	"net/http"

	"dhonveli-backend/models"
	"dhonveli-backend/services"
	"dhonveli-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

type createUserRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required"`
	Email         string `json:"email" binding:"required"`
	LoyaltyPoints int    `json:"loyalty_points"`
	Role          string `json:"role"`
}

func (ctl *UserController) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error())
		return
	}

	user := models.User{
		Username:      req.Username,
		Password:      req.Password,
		Email:         req.Email,
		LoyaltyPoints: req.LoyaltyPoints,
		Role:          req.Role,
	}
	if err := ctl.Svc.Create(&user); err != nil {
		if utils.IsDuplicate(err) {
			utils.JSONError(c, http.StatusConflict, "Username or email already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (ctl *UserController) GetUsers(c *gin.Context) {
	users, err := ctl.Svc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if len(users) == 0 {
		utils.JSONError(c, http.StatusNotFound, "No users found")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctl *UserController) GetUserByUsername(c *gin.Context) {
	user, err := ctl.Svc.GetByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *UserController) UpdateUser(c *gin.Context) {
	var patch services.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error())
		return
	}

	user, err := ctl.Svc.Patch(c.Param("username"), patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, user)
}
