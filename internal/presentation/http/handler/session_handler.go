package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lotuspos/counter/internal/application/service"
	"github.com/lotuspos/counter/internal/presentation/http/dto/request"
	"github.com/lotuspos/counter/internal/presentation/http/dto/response"
)

// SessionHandler exposes login and logout for the employee and report
// sessions.
type SessionHandler struct {
	sessions *service.SessionService
}

func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Login authenticates the employee and stores the session token.
func (h *SessionHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.sessions.Login(c.Request.Context(), req.Username, req.Password); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Logged in", nil)
}

// Logout discards the employee session.
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Logged out", nil)
}

// Status reports whether an employee session is active.
func (h *SessionHandler) Status(c *gin.Context) {
	response.OK(c, "Session status", gin.H{
		"active": h.sessions.HasSession(c.Request.Context()),
	})
}

// ReportLogin authenticates the counter account for report access.
func (h *SessionHandler) ReportLogin(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.sessions.ReportLogin(c.Request.Context(), req.Username, req.Password); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Report access granted", nil)
}

// ReportLogout discards the report session.
func (h *SessionHandler) ReportLogout(c *gin.Context) {
	if err := h.sessions.ReportLogout(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Report access revoked", nil)
}
