package showcase

import (
	"sort"

	"portfolio-app/internal/domain/showcase"
)

// ---------- requests
//
// New records default to visible unless the body says otherwise.

type CreateExhibitionRequest struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Info        string `json:"info"`
	Website     string `json:"website"`
	ImageURL    string `json:"image_url"`
	OrderIndex  int    `json:"order_index"`
	IsVisible   *bool  `json:"is_visible"`
}

func (r CreateExhibitionRequest) toRecord() showcase.Exhibition {
	return showcase.Exhibition{
		Slug:        r.Slug,
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		Location:    r.Location,
		Date:        r.Date,
		Description: r.Description,
		Info:        r.Info,
		Website:     r.Website,
		ImageURL:    r.ImageURL,
		OrderIndex:  r.OrderIndex,
		IsVisible:   r.IsVisible == nil || *r.IsVisible,
	}
}

type CreateCriticRequest struct {
	Name       string            `json:"name"`
	Role       string            `json:"role"`
	Text       string            `json:"text"`
	Texts      map[string]string `json:"texts"`
	OrderIndex int               `json:"order_index"`
	IsVisible  *bool             `json:"is_visible"`
}

// primaryText picks the plain text for a multilingual critic: the site's
// primary language first, then English, then the remaining languages in a
// fixed alphabetical order.
func primaryText(texts map[string]string) string {
	if t := texts["it"]; t != "" {
		return t
	}
	if t := texts["en"]; t != "" {
		return t
	}
	langs := make([]string, 0, len(texts))
	for lang := range texts {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		if texts[lang] != "" {
			return texts[lang]
		}
	}
	return ""
}

func (r CreateCriticRequest) toRecord() showcase.Critic {
	text := r.Text
	if text == "" {
		text = primaryText(r.Texts)
	}
	return showcase.Critic{
		Name:       r.Name,
		Role:       r.Role,
		Text:       text,
		Texts:      r.Texts,
		OrderIndex: r.OrderIndex,
		IsVisible:  r.IsVisible == nil || *r.IsVisible,
	}
}

type CreateCollectionRequest struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	OrderIndex  int    `json:"order_index"`
	IsVisible   *bool  `json:"is_visible"`
}

func (r CreateCollectionRequest) toRecord() showcase.Collection {
	return showcase.Collection{
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		OrderIndex:  r.OrderIndex,
		IsVisible:   r.IsVisible == nil || *r.IsVisible,
	}
}
