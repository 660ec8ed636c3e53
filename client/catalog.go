package client

import (
	"context"
	"net/http"
	"strconv"

	"portfolio-app/internal/domain/catalog"
	"portfolio-app/internal/domain/content"
	"portfolio-app/internal/store"
)

// Catalog and content blocks are always network-backed.

func (c *Client) Artworks(ctx context.Context, sectionID int) ([]catalog.Artwork, error) {
	path := "/api/artworks"
	if sectionID > 0 {
		path += "?section_id=" + strconv.Itoa(sectionID)
	}
	return call[[]catalog.Artwork](c, ctx, http.MethodGet, path, nil, "artworks")
}

func (c *Client) Artwork(ctx context.Context, id int) (catalog.Artwork, error) {
	return call[catalog.Artwork](c, ctx, http.MethodGet, "/api/artworks/"+strconv.Itoa(id), nil, "artwork")
}

func (c *Client) CreateArtwork(ctx context.Context, rec catalog.Artwork) (catalog.Artwork, error) {
	return call[catalog.Artwork](c, ctx, http.MethodPost, "/api/artworks", rec, "artwork")
}

func (c *Client) UpdateArtwork(ctx context.Context, id int, fields store.Fields) (catalog.Artwork, error) {
	return call[catalog.Artwork](c, ctx, http.MethodPut, "/api/artworks/"+strconv.Itoa(id), fields, "artwork")
}

func (c *Client) DeleteArtwork(ctx context.Context, id int) (catalog.Artwork, error) {
	return call[catalog.Artwork](c, ctx, http.MethodDelete, "/api/artworks/"+strconv.Itoa(id), nil, "artwork")
}

func (c *Client) Sections(ctx context.Context) ([]catalog.Section, error) {
	return call[[]catalog.Section](c, ctx, http.MethodGet, "/api/sections", nil, "sections")
}

func (c *Client) Section(ctx context.Context, id int) (catalog.Section, error) {
	return call[catalog.Section](c, ctx, http.MethodGet, "/api/sections/"+strconv.Itoa(id), nil, "section")
}

func (c *Client) SectionArtworks(ctx context.Context, id int) ([]catalog.Artwork, error) {
	return call[[]catalog.Artwork](c, ctx, http.MethodGet, "/api/sections/"+strconv.Itoa(id)+"/artworks", nil, "artworks")
}

func (c *Client) CreateSection(ctx context.Context, rec catalog.Section) (catalog.Section, error) {
	return call[catalog.Section](c, ctx, http.MethodPost, "/api/sections", rec, "section")
}

func (c *Client) UpdateSection(ctx context.Context, id int, fields store.Fields) (catalog.Section, error) {
	return call[catalog.Section](c, ctx, http.MethodPut, "/api/sections/"+strconv.Itoa(id), fields, "section")
}

func (c *Client) DeleteSection(ctx context.Context, id int) (catalog.Section, error) {
	return call[catalog.Section](c, ctx, http.MethodDelete, "/api/sections/"+strconv.Itoa(id), nil, "section")
}

func (c *Client) ContentBlocks(ctx context.Context) ([]content.Block, error) {
	return call[[]content.Block](c, ctx, http.MethodGet, "/api/content", nil, "content")
}

func (c *Client) ContentBlock(ctx context.Context, key string) (content.Block, error) {
	return call[content.Block](c, ctx, http.MethodGet, "/api/content/"+key, nil, "content")
}

func (c *Client) UpdateContentBlock(ctx context.Context, key string, fields store.Fields) (content.Block, error) {
	return call[content.Block](c, ctx, http.MethodPut, "/api/content/"+key, fields, "content")
}
