package newsletter

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"portfolio-app/internal/domain/newsletter"
	"portfolio-app/internal/store"

	"github.com/gin-gonic/gin"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isEmailValid(email string) bool {
	return emailPattern.MatchString(email)
}

type Handler struct {
	subscribers store.Repository[newsletter.Subscriber]
}

func NewHandler(subscribers store.Repository[newsletter.Subscriber]) *Handler {
	return &Handler{subscribers: subscribers}
}

// ------------------------------
// POST /api/newsletter
// ------------------------------
// Email is the natural key: subscribing an address twice is a no-op that
// returns the existing record.
func (h *Handler) Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}
	if !isEmailValid(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	existing, err := h.subscribers.List(c.Request.Context(), store.Filter{"email": req.Email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe", "details": err.Error()})
		return
	}
	if len(existing) > 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Already subscribed", "subscriber": existing[0]})
		return
	}

	rec := newsletter.Subscriber{
		Email:        req.Email,
		SubscribedAt: time.Now().UTC(),
	}
	if err := h.subscribers.Create(c.Request.Context(), &rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed successfully", "subscriber": rec})
}

// ------------------------------
// GET /api/newsletter
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	recs, err := h.subscribers.List(c.Request.Context(), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscribers", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": recs})
}

// ------------------------------
// DELETE /api/newsletter/:id
// ------------------------------
func (h *Handler) Unsubscribe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
		return
	}

	rec, err := h.subscribers.Delete(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsubscribe", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unsubscribed", "subscriber": rec})
}
