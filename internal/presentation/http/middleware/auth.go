package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/lotuspos/counter/internal/application/service"
	"github.com/lotuspos/counter/internal/presentation/http/dto/response"
	"github.com/lotuspos/counter/pkg/apperror"
)

// RequireSession rejects requests when no employee is logged in on this
// terminal. The UI reacts to the 401 by redirecting to its login screen.
func RequireSession(sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.HasSession(c.Request.Context()) {
			response.Unauthorized(c, apperror.ErrNoSession.Message)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireReportAccess additionally requires the stored report token with
// the counter-admin role claim.
func RequireReportAccess(sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sessions.CheckReportAccess(c.Request.Context()); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
