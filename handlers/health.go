package handlers

import (
	"net/http"

	"workhub/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness plus the last dependency snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"message":      "Hi, I'm Workhub",
		"dependencies": utils.GetHealthStatus(),
	})
}
