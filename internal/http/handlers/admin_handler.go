// Admin session HTTP handlers.
//
// This file exposes the single-operator login used to gate the settings
// endpoints:
//   - POST /admin/login
//   - POST /admin/logout
//   - GET  /admin/session
//
// There is no user model behind this: one credential pair from config and a
// persisted session with a fixed validity window.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Waldo881/Surf-Turf/internal/admin"
)

// LoginRequest is the JSON payload for the admin login.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse reports whether a live admin session exists.
type SessionResponse struct {
	LoggedIn bool `json:"loggedIn"`
}

// AdminLogin checks the credential pair and opens a session.
//
//	@Summary      Admin login
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Param        body body LoginRequest true "Credentials"
//	@Success      204
//	@Failure      401 {object} ErrorResponse
//	@Router       /admin/login [post]
func (h *Handlers) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}
	if err := h.adminSvc.Login(c.Request.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid credentials")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not log in")
		return
	}
	noContent(c)
}

// AdminLogout closes the session. Logging out twice is not an error.
//
//	@Summary      Admin logout
//	@Tags         admin
//	@Success      204
//	@Router       /admin/logout [post]
func (h *Handlers) AdminLogout(c *gin.Context) {
	if err := h.adminSvc.Logout(c.Request.Context()); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not log out")
		return
	}
	noContent(c)
}

// AdminSession reports whether a live session exists. Expired sessions count
// as logged out.
//
//	@Summary      Admin session state
//	@Tags         admin
//	@Produce      json
//	@Success      200 {object} SessionResponse
//	@Router       /admin/session [get]
func (h *Handlers) AdminSession(c *gin.Context) {
	in, err := h.adminSvc.IsLoggedIn(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not read session")
		return
	}
	ok(c, http.StatusOK, SessionResponse{LoggedIn: in})
}

// RequireAdmin is a Gin middleware guarding the settings endpoints: requests
// without a live admin session are rejected with 403.
func (h *Handlers) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		in, err := h.adminSvc.IsLoggedIn(c.Request.Context())
		if err != nil {
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not read session")
			return
		}
		if !in {
			fail(c, http.StatusForbidden, ErrCodeForbidden, "admin login required")
			return
		}
		c.Next()
	}
}
