package content

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

	"portfolio-app/internal/domain/content"
	"portfolio-app/internal/store/jsonstore"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := jsonstore.New(filepath.Join(t.TempDir(), "content.json"), "", content.DefaultBlocks)
	h := NewHandler(repo)

	r := gin.New()
	r.GET("/api/content", h.List)
	r.GET("/api/content/:key", h.Get)
	r.PUT("/api/content/:key", h.Update)
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

func TestListContent(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodGet, "/api/content", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Content []content.Block `json:"content"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Len(t, env.Content, len(content.DefaultBlocks))
}

func TestGetContentByKey(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodGet, "/api/content/biography", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Content content.Block `json:"content"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "biography", env.Content.Key)

	w = do(t, r, http.MethodGet, "/api/content/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Content block not found"}`, w.Body.String())
}

func TestUpdateContentMergesFields(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPut, "/api/content/biography", gin.H{"content": "Nuova biografia"})
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Content content.Block `json:"content"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Nuova biografia", env.Content.Content)
	// the title was not supplied, so it kept its seeded value
	assert.Equal(t, "Biografia", env.Content.Title)
}

func TestUpdateContentMissingKey(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPut, "/api/content/missing", gin.H{"content": "x"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Content block not found"}`, w.Body.String())
}
