package artworks

import "portfolio-app/internal/store"

// ---------- requests

type CreateArtworkRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	SectionID   int    `json:"section_id"`
	OrderIndex  int    `json:"order_index"`
}

// UpdateArtworkRequest carries a partial update: nil fields stay untouched.
type UpdateArtworkRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	SectionID   *int    `json:"section_id"`
	OrderIndex  *int    `json:"order_index"`
}

func (r UpdateArtworkRequest) fields() store.Fields {
	f := store.Fields{}
	if r.Title != nil {
		f["title"] = *r.Title
	}
	if r.Description != nil {
		f["description"] = *r.Description
	}
	if r.ImageURL != nil {
		f["image_url"] = *r.ImageURL
	}
	if r.SectionID != nil {
		f["section_id"] = *r.SectionID
	}
	if r.OrderIndex != nil {
		f["order_index"] = *r.OrderIndex
	}
	return f
}
