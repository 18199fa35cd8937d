package uploads

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	store    ObjectStore
	maxBytes int64
}

// Register mounts POST /upload on the admin group.
func Register(admin *gin.RouterGroup, store ObjectStore, maxBytes int64) {
	h := &Handler{store: store, maxBytes: maxBytes}
	admin.POST("/upload", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "no file uploaded"})
		return
	}

	if fileHeader.Size > h.maxBytes {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "file exceeds the upload size limit"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Images and other files land in separate folders, mirroring how the
	// public site references them.
	folder := "files"
	if strings.HasPrefix(contentType, "image/") {
		folder = "images"
	}
	key := folder + "/" + uuid.New().String() + "-" + slugifyFilename(fileHeader.Filename)

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to read upload"})
		return
	}
	defer src.Close()

	url, err := h.store.Put(c.Request.Context(), key, contentType, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to upload file to storage"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "filepath": url})
}

// slugifyFilename lowercases the name and collapses whitespace so object
// keys stay URL-safe.
func slugifyFilename(name string) string {
	name = strings.ToLower(filepath.Base(name))
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '\t'
	})
	name = strings.Join(fields, "-")
	if name == "" || name == "." {
		name = "upload"
	}
	return name
}
