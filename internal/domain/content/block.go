package content

import (
	"portfolio-app/internal/domain/record"
)

// Block is a keyed singleton record holding static page copy (biography,
// statement, contacts). Blocks are seeded at migration time and only ever
// updated by key, never created or deleted through the API.
type Block struct {
	record.Meta

	Key      string `gorm:"not null;uniqueIndex" json:"key"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `gorm:"column:image_url" json:"image_url"`
}

func (Block) TableName() string { return "content_blocks" }
