package models

// SeedProjects returns the projects written to an empty catalog.
func SeedProjects() []Project {
	return []Project{
		{
			Title:       "Platform Belajar Matematika",
			Description: "Aplikasi interaktif untuk membantu siswa memahami konsep kalkulus dengan visualisasi dinamis.",
			ImageURL:    "https://picsum.photos/seed/math/600/400",
			ExternalURL: "https://example.com/math",
			Category:    "Sains",
			Order:       1,
			ActionType:  ActionExternal,
		},
		{
			Title:       "Laboratorium Kimia Virtual",
			Description: "Eksperimen kimia aman dalam lingkungan 3D untuk siswa sekolah menengah.",
			ImageURL:    "https://picsum.photos/seed/chem/600/400",
			ExternalURL: "https://example.com/chem",
			Category:    "Sains",
			Order:       2,
			ActionType:  ActionExternal,
		},
		{
			Title:       "Sejarah Indonesia Interaktif",
			Description: "Garis waktu sejarah Nusantara dengan aset multimedia yang menarik.",
			ImageURL:    "https://picsum.photos/seed/history/600/400",
			ExternalURL: "https://example.com/history",
			Category:    "Sosial",
			Order:       3,
			ActionType:  ActionExternal,
		},
	}
}
