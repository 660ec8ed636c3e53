package sections

import "portfolio-app/internal/store"

// ---------- requests

type CreateSectionRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

type UpdateSectionRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"order_index"`
}

func (r UpdateSectionRequest) fields() store.Fields {
	f := store.Fields{}
	if r.Name != nil {
		f["name"] = *r.Name
	}
	if r.Slug != nil {
		f["slug"] = *r.Slug
	}
	if r.Description != nil {
		f["description"] = *r.Description
	}
	if r.OrderIndex != nil {
		f["order_index"] = *r.OrderIndex
	}
	return f
}
