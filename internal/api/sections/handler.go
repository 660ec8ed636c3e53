package sections

import (
	"errors"
	"net/http"
	"strconv"

	"portfolio-app/internal/domain/catalog"
	"portfolio-app/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	sections store.Repository[catalog.Section]
	artworks store.Repository[catalog.Artwork]
}

func NewHandler(sections store.Repository[catalog.Section], artworks store.Repository[catalog.Artwork]) *Handler {
	return &Handler{sections: sections, artworks: artworks}
}

// ------------------------------
// GET /api/sections
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	recs, err := h.sections.List(c.Request.Context(), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sections", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": recs})
}

// ------------------------------
// GET /api/sections/:id
// ------------------------------
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	rec, err := h.sections.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load section", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"section": rec})
}

// ------------------------------
// GET /api/sections/:id/artworks
// ------------------------------
func (h *Handler) ListArtworks(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	recs, err := h.artworks.List(c.Request.Context(), store.Filter{"section_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"artworks": recs})
}

// ------------------------------
// POST /api/sections
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" || req.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and slug are required"})
		return
	}

	// keep the slug unique on both backends; only the relational one has a
	// unique index
	existing, err := h.sections.List(c.Request.Context(), store.Filter{"slug": req.Slug})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create section", "details": err.Error()})
		return
	}
	if len(existing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug already in use"})
		return
	}

	rec := catalog.Section{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
	}
	if err := h.sections.Create(c.Request.Context(), &rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create section", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"section": rec})
}

// ------------------------------
// PUT /api/sections/:id
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	var req UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.sections.Update(c.Request.Context(), id, req.fields())
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update section", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"section": rec})
}

// ------------------------------
// DELETE /api/sections/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	if _, err := h.sections.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete section", "details": err.Error()})
		return
	}

	// deleting a section removes its artworks. The relational backend already
	// cascades through the foreign key; the JSON backend needs it done here,
	// before the section itself goes. A failed cleanup leaves both in place.
	orphans, err := h.artworks.List(c.Request.Context(), store.Filter{"section_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete section artworks", "details": err.Error()})
		return
	}
	for _, a := range orphans {
		if _, err := h.artworks.Delete(c.Request.Context(), a.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete section artworks", "details": err.Error()})
			return
		}
	}

	rec, err := h.sections.Delete(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete section", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Section deleted", "section": rec})
}
