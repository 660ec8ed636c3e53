package newsletter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-app/internal/domain/newsletter"
	"portfolio-app/internal/store/jsonstore"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := jsonstore.New[newsletter.Subscriber](filepath.Join(t.TempDir(), "newsletter.json"), "", nil)
	h := NewHandler(repo)

	r := gin.New()
	r.POST("/api/newsletter", h.Subscribe)
	r.GET("/api/newsletter", h.List)
	r.DELETE("/api/newsletter/:id", h.Unsubscribe)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var data []byte
	if body != nil {
		var err error
		data, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubscribe(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/newsletter", gin.H{"email": "visitatore@example.com"})
	require.Equal(t, http.StatusCreated, w.Code)

	var env struct {
		Subscriber newsletter.Subscriber `json:"subscriber"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "visitatore@example.com", env.Subscriber.Email)
	assert.False(t, env.Subscriber.SubscribedAt.IsZero())
}

func TestSubscribeValidation(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/newsletter", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Email is required"}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/newsletter", gin.H{"email": "non-una-mail"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid email format"}`, w.Body.String())
}

func TestSubscribeTwiceReturnsExisting(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/newsletter", gin.H{"email": "visitatore@example.com"})
	require.Equal(t, http.StatusCreated, w.Code)
	var first struct {
		Subscriber newsletter.Subscriber `json:"subscriber"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))

	w = do(t, r, http.MethodPost, "/api/newsletter", gin.H{"email": "visitatore@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	var second struct {
		Message    string                `json:"message"`
		Subscriber newsletter.Subscriber `json:"subscriber"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, "Already subscribed", second.Message)
	assert.Equal(t, first.Subscriber.ID, second.Subscriber.ID)

	// still a single record
	w = do(t, r, http.MethodGet, "/api/newsletter", nil)
	var list struct {
		Subscribers []newsletter.Subscriber `json:"subscribers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Subscribers, 1)
}

func TestUnsubscribe(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/newsletter", gin.H{"email": "visitatore@example.com"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodDelete, "/api/newsletter/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodDelete, "/api/newsletter/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Subscriber not found"}`, w.Body.String())
}
