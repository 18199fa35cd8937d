package messages

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alealfarizi/portfolio-backend/internal/ratelimit"
)

type Handler struct {
	repo *Repo
}

// Register mounts the contact-form routes. Listing and submitting are
// public (submission rate-limited per IP); mark-read and delete require
// an admin session.
func Register(public, admin *gin.RouterGroup, repo *Repo, limiter *ratelimit.PerIP) {
	h := &Handler{repo: repo}

	public.GET("/messages", h.list)
	public.POST("/messages", limiter.Middleware(), h.create)
	admin.PATCH("/messages/:id/read", h.markRead)
	admin.DELETE("/messages/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "messages": items})
}

type createReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Message == "" || !strings.Contains(req.Email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "name, email and message are required"})
		return
	}

	m, err := h.repo.Create(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": m})
}

func (h *Handler) markRead(c *gin.Context) {
	ok, err := h.repo.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) delete(c *gin.Context) {
	ok, err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
