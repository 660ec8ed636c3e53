package catalog

import (
	"portfolio-app/internal/domain/record"
)

// Section is a named grouping of artworks (a "series" on the public site).
type Section struct {
	record.Meta

	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"not null;uniqueIndex" json:"slug"`
	Description string `json:"description"`
	OrderIndex  int    `gorm:"not null;default:0;index" json:"order_index"`

	Artworks []Artwork `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE;" json:"artworks,omitempty"`
}
