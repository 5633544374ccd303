package middleware

import (
	"strings"

	"beatstream-go/internal/api/response"

	"github.com/gin-gonic/gin"
)

// HeaderPrincipal is injected by the authenticating proxy in front of
// the service. The value is trusted as-is.
const HeaderPrincipal = "X-User"

// AnonymousPrincipal marks guest access (matched case-insensitively).
const AnonymousPrincipal = "Anonymous"

const contextKeyPrincipal = "currentPrincipal"

// Identity resolves the proxy-supplied principal into the request
// context. Missing header and the anonymous sentinel both resolve to
// guest; guests pass through and are rejected later by AuthRequired
// where identity is mandatory.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := strings.TrimSpace(c.GetHeader(HeaderPrincipal))
		if principal != "" && !strings.EqualFold(principal, AnonymousPrincipal) {
			c.Set(contextKeyPrincipal, principal)
		}
		c.Next()
	}
}

// GetPrincipal returns the authenticated principal, or ok=false for
// guests.
func GetPrincipal(c *gin.Context) (string, bool) {
	val, exists := c.Get(contextKeyPrincipal)
	if !exists {
		return "", false
	}
	principal, ok := val.(string)
	return principal, ok && principal != ""
}

// AuthRequired rejects guests on endpoints demanding identity.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetPrincipal(c); !ok {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}
