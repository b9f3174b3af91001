package middleware

import (
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"rosegold_back_end/internal/identity"
)

// SessionGate answers 503 while the identity session is still resolving, so
// no session-dependent content is served before the first notification.
func SessionGate(m *identity.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.Loading() {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "session loading"})
			return
		}
		c.Next()
	}
}

// AuthRequired rejects requests while nobody is signed in and exposes the
// session user id as "user_id" in the gin context.
func AuthRequired(m *identity.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := m.Session()
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sign in required"})
			return
		}
		c.Set("user_id", session.ID)
		c.Next()
	}
}

// Processing lets one request through at a time; a second submission while
// the first is in flight gets 409.
func Processing() gin.HandlerFunc {
	var busy atomic.Bool
	return func(c *gin.Context) {
		if !busy.CompareAndSwap(false, true) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "request already in progress"})
			return
		}
		defer busy.Store(false)
		c.Next()
	}
}

// RequireAdmin only admits the account whose email matches adminEmail.
func RequireAdmin(m *identity.Manager, adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := m.Session()
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sign in required"})
			return
		}
		if session.Email == nil || !strings.EqualFold(*session.Email, adminEmail) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin privileges required"})
			return
		}
		c.Set("user_id", session.ID)
		c.Next()
	}
}
