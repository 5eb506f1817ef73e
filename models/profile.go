package models

// DeveloperProfile is the singleton identity and presentation record.
// LinkedIn and GitHub are generic "button 1" and "button 2" link slots whose
// labels the operator can rename freely.
type DeveloperProfile struct {
	ID             string         `json:"id,omitempty"`
	Name           string         `json:"name"`
	Role           string         `json:"role"`
	Bio            string         `json:"bio"`
	PhotoURL       string         `json:"photoUrl"`
	AppLogoURL     string         `json:"appLogoUrl"`
	Email          string         `json:"email"`
	LinkedIn       string         `json:"linkedin"`
	LinkedInLabel  string         `json:"linkedinLabel,omitempty"`
	GitHub         string         `json:"github"`
	GitHubLabel    string         `json:"githubLabel,omitempty"`
	SocialLabel    string         `json:"socialLabel,omitempty"`
	LayoutSettings LayoutSettings `json:"layoutSettings"`
	ThemeSettings  ThemeSettings  `json:"themeSettings"`
}

// DefaultProfile is used when the store holds no profile row yet.
func DefaultProfile() DeveloperProfile {
	return DeveloperProfile{
		Name:           "Andi Pratama",
		Role:           "Senior Educational Developer",
		Bio:            "Bersemangat dalam membangun solusi teknologi yang mempercepat proses pembelajaran di era digital. Berpengalaman lebih dari 5 tahun dalam pengembangan kurikulum digital.",
		PhotoURL:       "https://picsum.photos/seed/dev/400/400",
		Email:          "andi@eduproject.id",
		LinkedIn:       "https://linkedin.com/in/andipratama",
		LinkedInLabel:  "LinkedIn",
		GitHub:         "https://github.com/andipratama",
		GitHubLabel:    "GitHub",
		SocialLabel:    "Terhubung",
		LayoutSettings: DefaultLayout(),
		ThemeSettings:  DefaultTheme(),
	}
}
