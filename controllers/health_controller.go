package controllers

import (
	"net/http"

	"github.com/Govind-619/Shelfnotes/utils"
	"github.com/gin-gonic/gin"
)

// Health reports whether the store answers a trivial query
func (ctl *Controller) Health(c *gin.Context) {
	if _, err := ctl.db.Execute(c.Request.Context(), "SELECT 1"); err != nil {
		utils.RespondWithError(c, "Health", utils.ServiceUnavailableError(utils.ErrDBUnavailable, err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
