package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lucasbarrena/shopsphere-gateway/internal/httpx"
	"github.com/lucasbarrena/shopsphere-gateway/internal/session"
)

const sessionKey = "gateway.session"

// Authenticate derives the session from the Authorization header and makes
// the raw token available to outbound backend calls. It never rejects by
// itself; the Require* gates do that.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.Request)
		sess := session.FromToken(token, time.Now())
		c.Set(sessionKey, sess)
		if sess.Authenticated {
			c.Request = c.Request.WithContext(httpx.WithToken(c.Request.Context(), token))
		}
		c.Next()
	}
}

// SessionFrom returns the session Authenticate stored on this request.
func SessionFrom(c *gin.Context) session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(session.Session); ok {
			return s
		}
	}
	return session.Anonymous()
}

// RequireAuth rejects unauthenticated requests. The browser maps the 401
// to a redirect to the account page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !SessionFrom(c).Authenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
				"code":  "UNAUTHENTICATED",
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin gates the admin surface. This is a client-side convenience
// only; every backend enforces authorization independently.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if !sess.Authenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
				"code":  "UNAUTHENTICATED",
			})
			return
		}
		if !sess.Admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "admin role required",
				"code":  "FORBIDDEN",
			})
			return
		}
		c.Next()
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
