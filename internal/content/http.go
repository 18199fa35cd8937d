package content

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Store is what the handlers need from the version log; *Repo satisfies
// it. An interface so handler tests can run without a pgx pool.
type Store interface {
	Bootstrap(ctx context.Context) (PortfolioData, error)
	Save(ctx context.Context, partial Partial) (PortfolioData, error)
}

type Handler struct {
	store Store
	cache *Cache
}

// Register mounts GET /content on the public group and PUT /content on the
// admin group.
func Register(public, admin *gin.RouterGroup, store Store, cache *Cache) {
	h := &Handler{store: store, cache: cache}

	public.GET("/content", h.get)
	admin.PUT("/content", h.update)
}

func (h *Handler) get(c *gin.Context) {
	ctx := c.Request.Context()

	if data, ok := h.cache.Get(ctx); ok {
		c.JSON(http.StatusOK, data)
		return
	}

	data, err := h.store.Bootstrap(ctx)
	if err != nil {
		log.Printf("[error] operation=content_get error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load content"})
		return
	}

	h.cache.Set(ctx, data)
	c.JSON(http.StatusOK, data)
}

func (h *Handler) update(c *gin.Context) {
	var partial Partial
	if err := c.ShouldBindJSON(&partial); err != nil || len(partial) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	ctx := c.Request.Context()
	data, err := h.store.Save(ctx, partial)
	if err != nil {
		if isValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
			return
		}
		log.Printf("[error] operation=content_update error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to update content"})
		return
	}

	h.cache.Invalidate(ctx)
	c.JSON(http.StatusOK, gin.H{"ok": true, "content": data})
}
