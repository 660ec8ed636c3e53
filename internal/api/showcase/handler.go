package showcase

import (
	"net/http"

	"portfolio-app/internal/domain/showcase"
	"portfolio-app/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	exhibitions resource[showcase.Exhibition]
	critics     resource[showcase.Critic]
	collections resource[showcase.Collection]
}

func NewHandler(
	exhibitions store.Repository[showcase.Exhibition],
	critics store.Repository[showcase.Critic],
	collections store.Repository[showcase.Collection],
) *Handler {
	return &Handler{
		exhibitions: resource[showcase.Exhibition]{repo: exhibitions, singular: "exhibition", plural: "exhibitions", label: "Exhibition"},
		critics:     resource[showcase.Critic]{repo: critics, singular: "critic", plural: "critics", label: "Critic"},
		collections: resource[showcase.Collection]{repo: collections, singular: "collection", plural: "collections", label: "Collection"},
	}
}

// ---------- exhibitions

func (h *Handler) ListExhibitions(c *gin.Context)  { h.exhibitions.list(c) }
func (h *Handler) GetExhibition(c *gin.Context)    { h.exhibitions.get(c) }
func (h *Handler) UpdateExhibition(c *gin.Context) { h.exhibitions.update(c) }
func (h *Handler) DeleteExhibition(c *gin.Context) { h.exhibitions.delete(c) }

func (h *Handler) CreateExhibition(c *gin.Context) {
	var req CreateExhibitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" || req.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and slug are required"})
		return
	}
	taken, err := slugTaken(c, h.exhibitions.repo, req.Slug)
	if err != nil {
		h.exhibitions.internal(c, "create", err)
		return
	}
	if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug already in use"})
		return
	}

	rec := req.toRecord()
	if err := h.exhibitions.repo.Create(c.Request.Context(), &rec); err != nil {
		h.exhibitions.internal(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"exhibition": rec})
}

// ---------- critics

func (h *Handler) ListCritics(c *gin.Context)  { h.critics.list(c) }
func (h *Handler) GetCritic(c *gin.Context)    { h.critics.get(c) }
func (h *Handler) UpdateCritic(c *gin.Context) { h.critics.update(c) }
func (h *Handler) DeleteCritic(c *gin.Context) { h.critics.delete(c) }

func (h *Handler) CreateCritic(c *gin.Context) {
	var req CreateCriticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" || req.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and role are required"})
		return
	}
	if req.Text == "" && len(req.Texts) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one text is required"})
		return
	}

	rec := req.toRecord()
	if err := h.critics.repo.Create(c.Request.Context(), &rec); err != nil {
		h.critics.internal(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"critic": rec})
}

// ---------- collections

func (h *Handler) ListCollections(c *gin.Context)  { h.collections.list(c) }
func (h *Handler) GetCollection(c *gin.Context)    { h.collections.get(c) }
func (h *Handler) UpdateCollection(c *gin.Context) { h.collections.update(c) }
func (h *Handler) DeleteCollection(c *gin.Context) { h.collections.delete(c) }

func (h *Handler) CreateCollection(c *gin.Context) {
	var req CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" || req.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and slug are required"})
		return
	}
	taken, err := slugTaken(c, h.collections.repo, req.Slug)
	if err != nil {
		h.collections.internal(c, "create", err)
		return
	}
	if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug already in use"})
		return
	}

	rec := req.toRecord()
	if err := h.collections.repo.Create(c.Request.Context(), &rec); err != nil {
		h.collections.internal(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"collection": rec})
}
