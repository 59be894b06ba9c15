package controllers

import (
	"net/http"
	"strconv"

	"dhonveli-backend/utils"

	"github.com/gin-gonic/gin"
)

// idParam parses the :id path segment. On a non-numeric id it writes the
// 422 response itself and returns ok=false.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid id parameter")
		return 0, false
	}
	return uint(id), true
}
