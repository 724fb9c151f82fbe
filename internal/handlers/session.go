// internal/handlers/session.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/listing-discovery/internal/middleware"
	"github.com/javajoker/listing-discovery/internal/utils"
)

// GET /session
func GetSession(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"session": middleware.GetSession(c),
	})
}
