package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bokyaa/portfolio-backend/internal/auth"
	"github.com/bokyaa/portfolio-backend/internal/notify"
)

// Handler bundles the dependencies for the session endpoints.
type Handler struct {
	authenticator auth.Authenticator
	sessions      *auth.SessionManager
}

func New(authenticator auth.Authenticator, sessions *auth.SessionManager) *Handler {
	return &Handler{authenticator: authenticator, sessions: sessions}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if err := h.authenticator.Authenticate(req.Username, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"ok":     false,
			"error":  "invalid credentials",
			"notice": notify.FromError(err),
		})
		return
	}

	token := h.sessions.Open()
	c.JSON(http.StatusOK, gin.H{
		"ok":     true,
		"token":  token,
		"notice": notify.Info("Login Successful", "Welcome to the admin panel!"),
	})
}

func (h *Handler) logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		h.sessions.Close(strings.TrimSpace(token))
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":     true,
		"notice": notify.Info("Logged Out", "You have been successfully logged out."),
	})
}

// Register attaches the session routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/login", h.login)
	rg.POST("/logout", h.logout)
}
