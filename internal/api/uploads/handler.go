package uploads

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"portfolio-app/internal/blob"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store blob.Store // nil when no storage is configured for the deployment
}

func NewHandler(store blob.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) unavailable(c *gin.Context) bool {
	if h.store != nil {
		return false
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage not configured"})
	return true
}

// ------------------------------
// POST /api/upload  (multipart field "file")
// ------------------------------
func (h *Handler) Upload(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file", "details": err.Error()})
		return
	}
	defer src.Close()

	// the millisecond prefix keeps sequential uploads of the same file apart
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	contentType := file.Header.Get("Content-Type")

	if err := h.store.Put(c.Request.Context(), filename, src, contentType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "File uploaded successfully",
		"url":      "/images/" + filename,
		"filename": filename,
	})
}

// ------------------------------
// GET /images/:filename
// ------------------------------
func (h *Handler) Serve(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	obj, err := h.store.Get(c.Request.Context(), c.Param("filename"))
	if errors.Is(err, blob.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load image", "details": err.Error()})
		return
	}
	defer obj.Body.Close()

	// names embed an upload timestamp, so the content behind one never changes
	c.Header("Cache-Control", "public, max-age=31536000")
	c.DataFromReader(http.StatusOK, obj.Size, obj.ContentType, obj.Body, nil)
}
