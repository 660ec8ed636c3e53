package main

import (
	"log"
	"path/filepath"
	"time"

	"portfolio-app/config"
	"portfolio-app/database"
	artworksapi "portfolio-app/internal/api/artworks"
	contentapi "portfolio-app/internal/api/content"
	newsletterapi "portfolio-app/internal/api/newsletter"
	sectionsapi "portfolio-app/internal/api/sections"
	showcaseapi "portfolio-app/internal/api/showcase"
	uploadsapi "portfolio-app/internal/api/uploads"
	routes "portfolio-app/internal/app/http"
	"portfolio-app/internal/app/http/middleware"
	"portfolio-app/internal/blob"
	"portfolio-app/internal/blob/fsblob"
	"portfolio-app/internal/domain/catalog"
	"portfolio-app/internal/domain/content"
	"portfolio-app/internal/domain/newsletter"
	"portfolio-app/internal/domain/showcase"
	"portfolio-app/internal/store"
	"portfolio-app/internal/store/gormstore"
	"portfolio-app/internal/store/jsonstore"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func dataFile(name string) string {
	return filepath.Join(config.DATA_DIR, name)
}

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	// catalog and content ride the relational backend when a database is
	// configured, the JSON file backend otherwise. Both satisfy the same
	// repository contract, so nothing downstream cares.
	var (
		artworks store.Repository[catalog.Artwork]
		sections store.Repository[catalog.Section]
		blocks   store.Repository[content.Block]
	)
	if config.DB_URL != "" {
		database.InitDB()
		artworks = gormstore.New[catalog.Artwork](database.DB, "order_index")
		sections = gormstore.New[catalog.Section](database.DB, "order_index")
		blocks = gormstore.New[content.Block](database.DB, "")
	} else {
		log.Println("DB_URL not set. Using JSON file storage for catalog and content.")
		artworks = jsonstore.New[catalog.Artwork](dataFile("artworks.json"), "order_index", nil)
		sections = jsonstore.New[catalog.Section](dataFile("sections.json"), "order_index", nil)
		blocks = jsonstore.New(dataFile("content.json"), "", content.DefaultBlocks)
	}

	// showcase entities never had a relational table; they always live on the
	// JSON backend, seeded with the bundled defaults
	exhibitions := jsonstore.New(dataFile("exhibitions.json"), "order_index", showcase.DefaultExhibitions)
	critics := jsonstore.New(dataFile("critics.json"), "order_index", showcase.DefaultCritics)
	collections := jsonstore.New(dataFile("collections.json"), "order_index", showcase.DefaultCollections)
	subscribers := jsonstore.New[newsletter.Subscriber](dataFile("newsletter.json"), "", nil)

	var blobStore blob.Store
	if config.STORAGE_DIR != "" {
		fs, err := fsblob.New(config.STORAGE_DIR)
		if err != nil {
			log.Fatal("Failed to open storage dir:", err)
		}
		blobStore = fs
	} else {
		log.Println("STORAGE_DIR not set. Image upload and serving disabled.")
	}

	r := gin.New()
	r.Use(gin.Logger(), middleware.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Artworks:   artworksapi.NewHandler(artworks),
		Sections:   sectionsapi.NewHandler(sections, artworks),
		Content:    contentapi.NewHandler(blocks),
		Showcase:   showcaseapi.NewHandler(exhibitions, critics, collections),
		Newsletter: newsletterapi.NewHandler(subscribers),
		Uploads:    uploadsapi.NewHandler(blobStore),
	})

	r.Run(":" + config.PORT)
}
