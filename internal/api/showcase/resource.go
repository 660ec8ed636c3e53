package showcase

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"portfolio-app/internal/store"

	"github.com/gin-gonic/gin"
)

// resource bundles the envelope keys and messages of one showcase entity
// type. Exhibitions, critics and collections share the exact same list/get/
// update/delete shape; only creation differs in its required fields.
type resource[T any] struct {
	repo     store.Repository[T]
	singular string // envelope key, e.g. "exhibition"
	plural   string // envelope key, e.g. "exhibitions"
	label    string // message prefix, e.g. "Exhibition"
}

func (r resource[T]) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": r.label + " not found"})
}

func (r resource[T]) internal(c *gin.Context, action string, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Failed to " + action + " " + strings.ToLower(r.label),
		"details": err.Error(),
	})
}

func (r resource[T]) list(c *gin.Context) {
	recs, err := r.repo.List(c.Request.Context(), nil)
	if err != nil {
		r.internal(c, "load", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{r.plural: recs})
}

func (r resource[T]) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		r.notFound(c)
		return
	}
	rec, err := r.repo.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		r.notFound(c)
		return
	}
	if err != nil {
		r.internal(c, "load", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{r.singular: rec})
}

// update accepts any subset of the entity's fields, like the editing UI sends
// them. Identity and timestamps are never overwritten from the body.
func (r resource[T]) update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		r.notFound(c)
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	delete(body, "id")
	delete(body, "created_at")
	delete(body, "updated_at")

	rec, err := r.repo.Update(c.Request.Context(), id, body)
	if errors.Is(err, store.ErrNotFound) {
		r.notFound(c)
		return
	}
	if err != nil {
		r.internal(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{r.singular: rec})
}

func (r resource[T]) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		r.notFound(c)
		return
	}
	rec, err := r.repo.Delete(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		r.notFound(c)
		return
	}
	if err != nil {
		r.internal(c, "delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": r.label + " deleted", r.singular: rec})
}

// slugTaken reports whether another record already uses slug.
func slugTaken[T any](c *gin.Context, repo store.Repository[T], slug string) (bool, error) {
	existing, err := repo.List(c.Request.Context(), store.Filter{"slug": slug})
	if err != nil {
		return false, err
	}
	return len(existing) > 0, nil
}
