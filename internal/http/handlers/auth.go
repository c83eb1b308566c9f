package handlers

import (
	"net/http"

	"taskboard/internal/domain"
	"taskboard/internal/http/middleware"
	"taskboard/internal/logger"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	user, token, err := h.Auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookie(c, token)
	logger.FromContext(c.Request.Context()).Info("user registered", "user_id", user.ID)
	c.JSON(http.StatusCreated, gin.H{"user": user.Public()})
}

func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	user, token, err := h.Auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}

// Logout expires the identity cookie. Tokens are stateless, so a copy kept
// elsewhere stays valid until it expires.
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookie, "", -1, "/", "", h.SecureCookies, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookie, token, int(h.Auth.Tokens().TTL().Seconds()), "/", "", h.SecureCookies, true)
}

// Categories lists the fixed task categories.
func (h *Handler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Categories)
}
