package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"netracare-go/internal/repository"
)

// RequestLogger creates a gin middleware for logging requests using zap.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}

		switch {
		case status >= 500:
			log.Error("Server error", fields...)
		case status >= 400:
			log.Warn("Client error", fields...)
		default:
			// Log successful requests at the Debug level to reduce noise
			log.Debug("Request processed", fields...)
		}
	}
}

// UserLoaderMiddleware checks for a userID in the session. If found, it
// loads the user and adds it to the context. This ensures we don't have
// "zombie" sessions for users who no longer exist.
func UserLoaderMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get("userID").(int)
		if !ok {
			// No user ID in session, proceed as a guest.
			c.Next()
			return
		}

		user, err := repository.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			// User ID from session is invalid (user was deleted, etc.)
			// Clear the bad session and treat as a guest.
			log.Debug("Clearing stale session", zap.Int("userID", userID))
			session.Clear()
			session.Options(sessions.Options{Path: "/", MaxAge: -1})
			session.Save()
			c.Next()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// AuthRequired rejects requests without a valid user in the context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("user"); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
