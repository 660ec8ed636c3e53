package content

import (
	"net/http"

	"portfolio-app/internal/domain/content"
	"portfolio-app/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	blocks store.Repository[content.Block]
}

func NewHandler(blocks store.Repository[content.Block]) *Handler {
	return &Handler{blocks: blocks}
}

func (h *Handler) byKey(c *gin.Context) (*content.Block, bool) {
	recs, err := h.blocks.List(c.Request.Context(), store.Filter{"key": c.Param("key")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content", "details": err.Error()})
		return nil, false
	}
	if len(recs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content block not found"})
		return nil, false
	}
	return &recs[0], true
}

// ------------------------------
// GET /api/content
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	recs, err := h.blocks.List(c.Request.Context(), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": recs})
}

// ------------------------------
// GET /api/content/:key
// ------------------------------
func (h *Handler) Get(c *gin.Context) {
	rec, ok := h.byKey(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": rec})
}

// ------------------------------
// PUT /api/content/:key  (upsert-by-key only; blocks are never created here)
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	var req UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, ok := h.byKey(c)
	if !ok {
		return
	}

	updated, err := h.blocks.Update(c.Request.Context(), rec.ID, req.fields())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update content", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": updated})
}
