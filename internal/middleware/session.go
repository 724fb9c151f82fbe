// internal/middleware/session.go
package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/listing-discovery/internal/discovery"
	"github.com/javajoker/listing-discovery/internal/models"
)

// Headers set by the upstream gateway. Authentication itself happens there.
const (
	AuthenticatedHeader = "X-Authenticated"
	VerifiedHeader      = "X-Verified"
	LocationHeader      = "X-Location"
)

const sessionKey = "session"

// Session reads the caller's SessionContext from gateway headers. A
// verified flag without authentication is ignored.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := models.SessionContext{
			Authenticated: headerBool(c, AuthenticatedHeader),
			Verified:      headerBool(c, VerifiedHeader),
		}
		if !session.Authenticated {
			session.Verified = false
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

func GetSession(c *gin.Context) models.SessionContext {
	if v, exists := c.Get(sessionKey); exists {
		if session, ok := v.(models.SessionContext); ok {
			return session
		}
	}
	return models.SessionContext{}
}

func headerBool(c *gin.Context, name string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(c.GetHeader(name)))
	return err == nil && b
}

// HeaderLocation is the location provider of a request: the place the
// client reports in X-Location, or "" when it reports none.
func HeaderLocation(c *gin.Context) discovery.LocationProvider {
	return discovery.StaticLocation(strings.TrimSpace(c.GetHeader(LocationHeader)))
}
