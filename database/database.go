package database

import (
	"fmt"
	"log"

	"portfolio-app/config"
	"portfolio-app/internal/domain/catalog"
	"portfolio-app/internal/domain/content"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := config.DB_URL
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		&catalog.Section{},
		&catalog.Artwork{},
		&content.Block{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	seedContentBlocks(DB)

	fmt.Println("Connected and migrated successfully")
}

// seedContentBlocks inserts the default copy slots once. The content API has
// no create endpoint, so the rows must exist before the editing UI can save.
func seedContentBlocks(db *gorm.DB) {
	var count int64
	if err := db.Model(&content.Block{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to count content blocks:", err)
	}
	if count > 0 {
		return
	}
	blocks := content.DefaultBlocks
	if err := db.Create(&blocks).Error; err != nil {
		log.Fatal("Failed to seed content blocks:", err)
	}
}
