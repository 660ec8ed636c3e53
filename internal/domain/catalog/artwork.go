package catalog

import (
	"portfolio-app/internal/domain/record"
)

type Artwork struct {
	record.Meta

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	ImageURL    string `gorm:"column:image_url" json:"image_url"`

	SectionID  int `gorm:"not null;index:idx_artworks_section_order,priority:1" json:"section_id"`
	OrderIndex int `gorm:"not null;default:0;index:idx_artworks_section_order,priority:2" json:"order_index"`
}
