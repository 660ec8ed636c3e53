package content

import "portfolio-app/internal/domain/record"

// DefaultBlocks are the copy slots the public pages expect to exist. They are
// inserted once when the content_blocks collection is empty; afterwards the
// editing UI maintains them through PUT /api/content/:key.
var DefaultBlocks = []Block{
	{
		Meta:    record.Meta{ID: 1},
		Key:     "biography",
		Title:   "Biografia",
		Content: "Testo biografico dell'artista.",
	},
	{
		Meta:    record.Meta{ID: 2},
		Key:     "statement",
		Title:   "Statement",
		Content: "Nota dell'artista sulla propria ricerca.",
	},
	{
		Meta:    record.Meta{ID: 3},
		Key:     "contact",
		Title:   "Contatti",
		Content: "info@example.com",
	},
}
