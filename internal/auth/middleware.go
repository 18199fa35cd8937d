package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName is where the login handler stores the session token.
	CookieName = "auth_token"

	ctxAdminUser = "admin_user"
)

// RequireAdmin rejects requests without a valid session token before any
// handler (and therefore any mutation) runs. The token is read from the
// session cookie or, failing that, an Authorization bearer header.
func RequireAdmin(tokens *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			tokenString = bearerToken(c.GetHeader("Authorization"))
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
			c.Abort()
			return
		}

		username, err := tokens.Verify(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
			c.Abort()
			return
		}

		c.Set(ctxAdminUser, username)
		c.Next()
	}
}

// AdminUser returns the username set by RequireAdmin.
func AdminUser(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(ctxAdminUser))
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
