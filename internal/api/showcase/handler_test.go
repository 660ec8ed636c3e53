package showcase

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

	"portfolio-app/internal/domain/showcase"
	"portfolio-app/internal/store/jsonstore"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	h := NewHandler(
		jsonstore.New(filepath.Join(dir, "exhibitions.json"), "order_index", showcase.DefaultExhibitions),
		jsonstore.New(filepath.Join(dir, "critics.json"), "order_index", showcase.DefaultCritics),
		jsonstore.New(filepath.Join(dir, "collections.json"), "order_index", showcase.DefaultCollections),
	)

	r := gin.New()
	r.GET("/api/exhibitions", h.ListExhibitions)
	r.GET("/api/exhibitions/:id", h.GetExhibition)
	r.POST("/api/exhibitions", h.CreateExhibition)
	r.PUT("/api/exhibitions/:id", h.UpdateExhibition)
	r.DELETE("/api/exhibitions/:id", h.DeleteExhibition)
	r.GET("/api/critics", h.ListCritics)
	r.POST("/api/critics", h.CreateCritic)
	r.GET("/api/collections", h.ListCollections)
	r.POST("/api/collections", h.CreateCollection)
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

func TestListExhibitionsSeeded(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodGet, "/api/exhibitions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Exhibitions []showcase.Exhibition `json:"exhibitions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Exhibitions, len(showcase.DefaultExhibitions))
	assert.Equal(t, "materia-e-forma", env.Exhibitions[0].Slug)
}

func TestCreateExhibition(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/exhibitions", gin.H{
		"slug": "nuova-mostra", "title": "Nuova Mostra", "location": "Torino", "date": "2026",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var env struct {
		Exhibition showcase.Exhibition `json:"exhibition"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, len(showcase.DefaultExhibitions)+1, env.Exhibition.ID)
	assert.True(t, env.Exhibition.IsVisible)
}

func TestCreateExhibitionValidation(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/exhibitions", gin.H{"title": "Senza slug"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Title and slug are required"}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/exhibitions", gin.H{"title": "Doppione", "slug": "materia-e-forma"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Slug already in use"}`, w.Body.String())
}

func TestToggleExhibitionVisibility(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPut, "/api/exhibitions/1", gin.H{"is_visible": false})
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Exhibition showcase.Exhibition `json:"exhibition"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Exhibition.IsVisible)
	// hidden, not deleted
	assert.Equal(t, "Materia e Forma", env.Exhibition.Title)

	w = do(t, r, http.MethodGet, "/api/exhibitions/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestExhibitionNotFound(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodGet, "/api/exhibitions/99", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Exhibition not found"}`, w.Body.String())
}

func TestCreateCriticRequiresText(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/critics", gin.H{"name": "Anna Verdi", "role": "Storica dell'arte"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"At least one text is required"}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/critics", gin.H{
		"name": "Anna Verdi", "role": "Storica dell'arte",
		"texts": gin.H{"it": "Un'opera densa di memoria."},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var env struct {
		Critic showcase.Critic `json:"critic"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	// the primary language doubles as the plain text
	assert.Equal(t, "Un'opera densa di memoria.", env.Critic.Text)
}

func TestCriticPrimaryTextSelection(t *testing.T) {
	assert.Equal(t, "italiano", primaryText(map[string]string{
		"en": "english", "it": "italiano", "fr": "français",
	}))
	assert.Equal(t, "english", primaryText(map[string]string{
		"fr": "français", "en": "english", "de": "deutsch",
	}))
	// neither primary language present: alphabetical, always the same pick
	assert.Equal(t, "deutsch", primaryText(map[string]string{
		"fr": "français", "de": "deutsch",
	}))
	assert.Equal(t, "", primaryText(nil))
}

func TestCollectionsSeededInOrder(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodGet, "/api/collections", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Collections []showcase.Collection `json:"collections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Collections, 4)
	assert.Equal(t, "opera-5", env.Collections[0].Slug)
	assert.Equal(t, "opera-8", env.Collections[3].Slug)
}
