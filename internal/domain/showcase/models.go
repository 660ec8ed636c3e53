package showcase

import (
	"portfolio-app/internal/domain/record"
)

// Showcase entities live on the keyed JSON store rather than the relational
// backend, so they carry json tags only.

// Exhibition is one entry of the exhibition history. IsVisible toggles display
// without deleting the record.
type Exhibition struct {
	record.Meta

	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Location    string `json:"location"`
	Date        string `json:"date"` // free-text period, e.g. "Maggio - Giugno 2024"
	Description string `json:"description,omitempty"`
	Info        string `json:"info,omitempty"`
	Website     string `json:"website,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	OrderIndex  int    `json:"order_index"`
	IsVisible   bool   `json:"is_visible"`
}

// Critic is a critical text about the artist's work, either as a single text
// or as per-language texts.
type Critic struct {
	record.Meta

	Name       string            `json:"name"`
	Role       string            `json:"role"`
	Text       string            `json:"text,omitempty"`
	Texts      map[string]string `json:"texts,omitempty"`
	OrderIndex int               `json:"order_index"`
	IsVisible  bool              `json:"is_visible"`
}

// Collection is a curated group of works presented on the landing page.
type Collection struct {
	record.Meta

	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	OrderIndex  int    `json:"order_index"`
	IsVisible   bool   `json:"is_visible"`
}
