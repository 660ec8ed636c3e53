package content

import "portfolio-app/internal/store"

type UpdateBlockRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url"`
}

func (r UpdateBlockRequest) fields() store.Fields {
	f := store.Fields{}
	if r.Title != nil {
		f["title"] = *r.Title
	}
	if r.Content != nil {
		f["content"] = *r.Content
	}
	if r.ImageURL != nil {
		f["image_url"] = *r.ImageURL
	}
	return f
}
