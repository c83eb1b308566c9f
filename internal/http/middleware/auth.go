package middleware

import (
	"net/http"

	"taskboard/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthCookie holds the identity token. It is the only credential accepted.
const AuthCookie = "authToken"

const userIDKey = "user_id"

// IdentityVerifier maps a token to a user id; ok is false for any invalid token.
type IdentityVerifier interface {
	VerifyIdentity(token string) (userID string, ok bool)
}

// Identity rejects requests without a valid identity cookie and stores the
// caller's user id in the context.
func Identity(v IdentityVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AuthCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		userID, ok := v.VerifyIdentity(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		ctx := c.Request.Context()
		c.Request = c.Request.WithContext(logger.NewContext(ctx, logger.FromContext(ctx).With("user_id", userID)))
		c.Next()
	}
}

// UserID returns the id stored by Identity.
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
