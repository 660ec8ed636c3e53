package routes

import (
	artworksapi "portfolio-app/internal/api/artworks"
	authapi "portfolio-app/internal/api/auth"
	contentapi "portfolio-app/internal/api/content"
	newsletterapi "portfolio-app/internal/api/newsletter"
	sectionsapi "portfolio-app/internal/api/sections"
	showcaseapi "portfolio-app/internal/api/showcase"
	uploadsapi "portfolio-app/internal/api/uploads"
	"portfolio-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// Deps carries the wired handlers into route registration. Repositories are
// chosen in main; nothing here knows which backend serves an entity type.
type Deps struct {
	Artworks   *artworksapi.Handler
	Sections   *sectionsapi.Handler
	Content    *contentapi.Handler
	Showcase   *showcaseapi.Handler
	Newsletter *newsletterapi.Handler
	Uploads    *uploadsapi.Handler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Not found"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// session gate for the editing UI; kept outside the sanitizer so
	// passwords pass through untouched
	r.POST("/api/auth/login", authapi.Login)
	session := r.Group("/api/auth")
	session.Use(middleware.AuthMiddleware())
	session.GET("/verify", authapi.Verify)

	r.GET("/images/:filename", d.Uploads.Serve)

	api := r.Group("/api")
	api.Use(middleware.SanitizeInputMiddleware())

	api.GET("/artworks", d.Artworks.List)
	api.GET("/artworks/:id", d.Artworks.Get)
	api.POST("/artworks", d.Artworks.Create)
	api.PUT("/artworks/:id", d.Artworks.Update)
	api.DELETE("/artworks/:id", d.Artworks.Delete)

	api.GET("/sections", d.Sections.List)
	api.GET("/sections/:id", d.Sections.Get)
	api.GET("/sections/:id/artworks", d.Sections.ListArtworks)
	api.POST("/sections", d.Sections.Create)
	api.PUT("/sections/:id", d.Sections.Update)
	api.DELETE("/sections/:id", d.Sections.Delete)

	api.GET("/content", d.Content.List)
	api.GET("/content/:key", d.Content.Get)
	api.PUT("/content/:key", d.Content.Update)

	api.GET("/exhibitions", d.Showcase.ListExhibitions)
	api.GET("/exhibitions/:id", d.Showcase.GetExhibition)
	api.POST("/exhibitions", d.Showcase.CreateExhibition)
	api.PUT("/exhibitions/:id", d.Showcase.UpdateExhibition)
	api.DELETE("/exhibitions/:id", d.Showcase.DeleteExhibition)

	api.GET("/critics", d.Showcase.ListCritics)
	api.GET("/critics/:id", d.Showcase.GetCritic)
	api.POST("/critics", d.Showcase.CreateCritic)
	api.PUT("/critics/:id", d.Showcase.UpdateCritic)
	api.DELETE("/critics/:id", d.Showcase.DeleteCritic)

	api.GET("/collections", d.Showcase.ListCollections)
	api.GET("/collections/:id", d.Showcase.GetCollection)
	api.POST("/collections", d.Showcase.CreateCollection)
	api.PUT("/collections/:id", d.Showcase.UpdateCollection)
	api.DELETE("/collections/:id", d.Showcase.DeleteCollection)

	api.POST("/newsletter", d.Newsletter.Subscribe)
	api.GET("/newsletter", d.Newsletter.List)
	api.DELETE("/newsletter/:id", d.Newsletter.Unsubscribe)

	api.POST("/upload", d.Uploads.Upload)
}
