package middleware

import (
	"datachat/internal/api/handler/response"
	"datachat/pkg"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader     = "X-Session-ID"
	SessionCookie     = "datachat_session"
	sessionContextKey = "sessionID"
)

// SessionMiddleware resolves the caller's session from the X-Session-ID
// header, then the session cookie, and mints a new one when both are absent.
// The id is echoed back in both places.
func SessionMiddleware(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID, _ = c.Cookie(SessionCookie)
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
		} else if err := pkg.ValidateVar(sessionID, "uuid"); err != nil {
			c.JSON(http.StatusBadRequest, response.APIError{Message: "Invalid session id", Kind: "validation"})
			c.Abort()
			return
		}

		c.Set(sessionContextKey, sessionID)
		c.Header(SessionHeader, sessionID)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sessionID, int(ttl.Seconds()), "/", "", false, true)

		c.Next()
	}
}

// GetSessionID returns the session resolved by SessionMiddleware.
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
