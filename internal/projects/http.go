package projects

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

// Register mounts the project routes: public listing, admin mutations.
func Register(public, admin *gin.RouterGroup, repo *Repo, maxImageBytes int64) {
	h := &Handler{repo: repo, maxBytes: maxImageBytes}

	public.GET("/projects", h.list)
	admin.POST("/projects", h.create)
	admin.PUT("/projects/:id", h.update)
	admin.DELETE("/projects/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

type projectReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	RepoURL     string   `json:"repo_url"`
	DemoURL     string   `json:"demo_url"`
	TechStack   []string `json:"tech_stack"`
	ImageData   string   `json:"image_data"`
	ImageType   string   `json:"image_type"`
}

func (req *projectReq) validate(maxBytes int64) string {
	if strings.TrimSpace(req.Title) == "" {
		return "title is required"
	}
	// The image is optional for projects; validate only when provided.
	if req.ImageData != "" {
		if err := imagedata.Check(req.ImageData, req.ImageType, maxBytes); err != nil {
			return err.Error()
		}
	}
	return ""
}

func (req *projectReq) toProject() Project {
	tech := req.TechStack
	if tech == nil {
		tech = []string{}
	}
	return Project{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		RepoURL:     req.RepoURL,
		DemoURL:     req.DemoURL,
		TechStack:   tech,
		ImageData:   req.ImageData,
		ImageType:   req.ImageType,
	}
}

func (h *Handler) create(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if msg := req.validate(h.maxBytes); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
		return
	}

	p, err := h.repo.Create(c.Request.Context(), req.toProject())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if msg := req.validate(h.maxBytes); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
		return
	}

	p, err := h.repo.Update(c.Request.Context(), c.Param("id"), req.toProject())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	ok, err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
