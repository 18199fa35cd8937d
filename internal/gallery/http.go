package gallery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alealfarizi/portfolio-backend/internal/imagedata"
)

type Handler struct {
	repo     *Repo
	maxBytes int64
}

// Register mounts the gallery routes: public listing, admin mutations.
func Register(public, admin *gin.RouterGroup, repo *Repo, maxImageBytes int64) {
	h := &Handler{repo: repo, maxBytes: maxImageBytes}

	public.GET("/gallery", h.list)
	admin.POST("/gallery", h.create)
	admin.PUT("/gallery/:id", h.update)
	admin.DELETE("/gallery/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "gallery": items})
}

type itemReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageData   string `json:"image_data"`
	ImageType   string `json:"image_type"`
}

// validate rejects the payload before any row is written.
func (req *itemReq) validate(maxBytes int64) string {
	if strings.TrimSpace(req.Title) == "" {
		return "title is required"
	}
	if err := imagedata.Check(req.ImageData, req.ImageType, maxBytes); err != nil {
		return err.Error()
	}
	return ""
}

func (h *Handler) create(c *gin.Context) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if msg := req.validate(h.maxBytes); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
		return
	}

	it, err := h.repo.Create(c.Request.Context(), strings.TrimSpace(req.Title), req.Description, req.ImageData, req.ImageType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "item": it})
}

func (h *Handler) update(c *gin.Context) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if msg := req.validate(h.maxBytes); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
		return
	}

	it, err := h.repo.Update(c.Request.Context(), c.Param("id"), strings.TrimSpace(req.Title), req.Description, req.ImageData, req.ImageType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if it == nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "gallery item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "item": it})
}

func (h *Handler) delete(c *gin.Context) {
	ok, err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "gallery item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
