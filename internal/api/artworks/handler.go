package artworks

import (
	"errors"
	"net/http"
	"strconv"

	"portfolio-app/internal/domain/catalog"
	"portfolio-app/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	artworks store.Repository[catalog.Artwork]
}

func NewHandler(artworks store.Repository[catalog.Artwork]) *Handler {
	return &Handler{artworks: artworks}
}

// ------------------------------
// GET /api/artworks  (?section_id= filters)
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	filter := store.Filter{}
	if v := c.Query("section_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid section_id"})
			return
		}
		filter["section_id"] = id
	}

	recs, err := h.artworks.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"artworks": recs})
}

// ------------------------------
// GET /api/artworks/:id
// ------------------------------
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	rec, err := h.artworks.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"artwork": rec})
}

// ------------------------------
// POST /api/artworks
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title == "" || req.SectionID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and section_id are required"})
		return
	}

	rec := catalog.Artwork{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		SectionID:   req.SectionID,
		OrderIndex:  req.OrderIndex,
	}
	if err := h.artworks.Create(c.Request.Context(), &rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"artwork": rec})
}

// ------------------------------
// PUT /api/artworks/:id
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	var req UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.artworks.Update(c.Request.Context(), id, req.fields())
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"artwork": rec})
}

// ------------------------------
// DELETE /api/artworks/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	rec, err := h.artworks.Delete(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Artwork deleted", "artwork": rec})
}
