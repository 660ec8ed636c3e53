package showcase

import "portfolio-app/internal/domain/record"

// Default datasets used to seed the JSON collections on first access, so the
// public pages render something meaningful before the editing UI has been used.

var DefaultCollections = []Collection{
	{
		Meta:        record.Meta{ID: 1},
		Slug:        "opera-5",
		Title:       "OPERA 5",
		Description: "Opere scultoree che esplorano la materia e la forma attraverso l'arte contemporanea",
		ImageURL:    "/DSCF3759.jpg",
		OrderIndex:  1,
		IsVisible:   true,
	},
	{
		Meta:        record.Meta{ID: 2},
		Slug:        "opera-6",
		Title:       "OPERA 6",
		Description: "Opere scultoree che esplorano la materia e la forma attraverso l'arte contemporanea",
		ImageURL:    "/DSCF9079.jpg",
		OrderIndex:  2,
		IsVisible:   true,
	},
	{
		Meta:        record.Meta{ID: 3},
		Slug:        "opera-7",
		Title:       "OPERA 7",
		Description: "Opere scultoree che esplorano la materia e la forma attraverso l'arte contemporanea",
		ImageURL:    "/DSCF2104.jpg",
		OrderIndex:  3,
		IsVisible:   true,
	},
	{
		Meta:        record.Meta{ID: 4},
		Slug:        "opera-8",
		Title:       "OPERA 8",
		Description: "Opere scultoree che esplorano la materia e la forma attraverso l'arte contemporanea",
		ImageURL:    "/DSCF2012.jpg",
		OrderIndex:  4,
		IsVisible:   true,
	},
}

var DefaultExhibitions = []Exhibition{
	{
		Meta:       record.Meta{ID: 1},
		Slug:       "materia-e-forma",
		Title:      "Materia e Forma",
		Subtitle:   "Mostra personale",
		Location:   "Galleria d'Arte Moderna, Milano",
		Date:       "Maggio - Giugno 2024",
		OrderIndex: 1,
		IsVisible:  true,
	},
	{
		Meta:       record.Meta{ID: 2},
		Slug:       "tracce",
		Title:      "Tracce",
		Subtitle:   "Collettiva",
		Location:   "Palazzo delle Esposizioni, Roma",
		Date:       "Ottobre 2023",
		OrderIndex: 2,
		IsVisible:  true,
	},
}

var DefaultCritics = []Critic{
	{
		Meta: record.Meta{ID: 1},
		Name: "Maria Rossi",
		Role: "Critica d'arte",
		Texts: map[string]string{
			"it": "Un percorso che attraversa la materia per restituirle una voce.",
			"en": "A journey through matter that gives it back a voice.",
		},
		OrderIndex: 1,
		IsVisible:  true,
	},
	{
		Meta:       record.Meta{ID: 2},
		Name:       "Giovanni Bianchi",
		Role:       "Curatore",
		Text:       "La scultura come gesto sospeso tra memoria e presente.",
		OrderIndex: 2,
		IsVisible:  true,
	},
}
