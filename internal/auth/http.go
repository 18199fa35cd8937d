package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/alealfarizi/portfolio-backend/config"
	"github.com/alealfarizi/portfolio-backend/internal/ratelimit"
)

type Handler struct {
	tokens *Tokens
	cfg    config.AuthConfig
	secure bool
}

// Register mounts the login/logout routes. Login attempts are rate-limited
// per IP.
func Register(rg *gin.RouterGroup, tokens *Tokens, cfg config.AuthConfig, limiter *ratelimit.PerIP, production bool) {
	h := &Handler{tokens: tokens, cfg: cfg, secure: production}

	rg.POST("/auth/login", limiter.Middleware(), h.login)
	rg.POST("/auth/logout", h.logout)
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if !h.checkCredentials(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid credentials"})
		return
	}

	token, err := h.tokens.Issue(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to issue session"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, token, int(TokenTTL.Seconds()), "/", "", h.secure, true)
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token})
}

func (h *Handler) logout(c *gin.Context) {
	// There is no server-side session state; clearing the cookie is all a
	// logout can do. Outstanding bearer copies stay valid until expiry.
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, "", -1, "/", "", h.secure, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// checkCredentials compares against the single configured admin account.
// The bcrypt hash wins when configured; the plaintext fallback still goes
// through a constant-time compare.
func (h *Handler) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(h.cfg.AdminUser)) == 1

	var passOK bool
	if h.cfg.AdminPassHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPassHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(h.cfg.AdminPass)) == 1
	}

	return userOK && passOK
}
