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

type TicketController struct {
	Svc *services.TicketService
}

func NewTicketController(svc *services.TicketService) *TicketController {
	return &TicketController{Svc: svc}
}

// CreateTickets takes a bare JSON array; one ticket row is inserted per
// entry.
func (ctl *TicketController) CreateTickets(c *gin.Context) {
	var req []services.TicketInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error())
		return
	}

	tickets, err := ctl.Svc.CreateBatch(req)
	if err != nil {
		var missing *services.ActivityMissingError
		if errors.As(err, &missing) {
			utils.JSONError(c, http.StatusNotFound, missing.Error())
			return
		}
		if utils.IsIntegrityViolation(err) {
			utils.JSONError(c, http.StatusConflict, "Ticket violates a database constraint")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, tickets)
}

func (ctl *TicketController) GetTickets(c *gin.Context) {
	tickets, err := ctl.Svc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if len(tickets) == 0 {
		utils.JSONError(c, http.StatusNotFound, "No activity tickets found")
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (ctl *TicketController) DeleteTicket(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := ctl.Svc.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Activity ticket with id %d not found", id))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Activity ticket deleted")
}
