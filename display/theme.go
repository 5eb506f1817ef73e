package display

import (
	"strings"

	"github.com/eduproject/catalog/models"
)

// CSSVar is one custom property of the theme.
type CSSVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Theme is computed once per settings fetch and handed to every view that
// renders colors. It never changes after construction.
type Theme struct {
	Settings models.ThemeSettings `json:"settings"`
	Vars     []CSSVar             `json:"vars"`
}

// ThemeFor resolves the theme from settings, using the default for every
// empty value.
func ThemeFor(settings models.ThemeSettings) Theme {
	defaults := models.DefaultTheme()
	resolved := models.ThemeSettings{
		PrimaryColor:    orDefault(settings.PrimaryColor, defaults.PrimaryColor),
		SecondaryColor:  orDefault(settings.SecondaryColor, defaults.SecondaryColor),
		AccentColor:     orDefault(settings.AccentColor, defaults.AccentColor),
		TextColor:       orDefault(settings.TextColor, defaults.TextColor),
		BackgroundColor: orDefault(settings.BackgroundColor, defaults.BackgroundColor),
		CardColor:       orDefault(settings.CardColor, defaults.CardColor),
		BorderRadius:    orDefault(settings.BorderRadius, defaults.BorderRadius),
	}
	return Theme{
		Settings: resolved,
		Vars: []CSSVar{
			{"--primary", resolved.PrimaryColor},
			{"--secondary", resolved.SecondaryColor},
			{"--accent", resolved.AccentColor},
			{"--text", resolved.TextColor},
			{"--bg", resolved.BackgroundColor},
			{"--card", resolved.CardColor},
			{"--radius", resolved.BorderRadius},
		},
	}
}

// Style renders the variables as an inline style declaration.
func (t Theme) Style() string {
	var b strings.Builder
	for i, v := range t.Vars {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(v.Name)
		b.WriteString(": ")
		b.WriteString(v.Value)
		b.WriteString(";")
	}
	return b.String()
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
