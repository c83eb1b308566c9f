package handlers

import (
	"errors"
	"net/http"

	"taskboard/internal/domain"
	"taskboard/internal/http/middleware"
	"taskboard/internal/logger"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Auth  *service.AuthService
	Tasks *service.TaskService

	// SecureCookies sets the Secure attribute on the identity cookie.
	SecureCookies bool
}

func NewHandler(auth *service.AuthService, tasks *service.TaskService, secureCookies bool) *Handler {
	return &Handler{
		Auth:          auth,
		Tasks:         tasks,
		SecureCookies: secureCookies,
	}
}

// getUserID returns the caller set by the Identity middleware, writing 401
// when it is missing.
func getUserID(c *gin.Context) (string, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}
	return id, ok
}

// respondError maps the error taxonomy to a status code. Unclassified
// errors are logged and reported without detail.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("request failed",
			"method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
