package models

// LayoutPreset names a bundle of layout values.
type LayoutPreset string

const (
	PresetStandard LayoutPreset = "standard"
	PresetAdaptive LayoutPreset = "adaptive"
	PresetMasonry  LayoutPreset = "masonry"
	PresetCustom   LayoutPreset = "custom"
)

// Valid reports whether the preset is a known one.
func (p LayoutPreset) Valid() bool {
	switch p {
	case PresetStandard, PresetAdaptive, PresetMasonry, PresetCustom:
		return true
	}
	return false
}

// LayoutSettings controls the home listing grid.
type LayoutSettings struct {
	ColumnsDesktop int          `json:"columnsDesktop"`
	ColumnsTablet  int          `json:"columnsTablet"`
	ColumnsMobile  int          `json:"columnsMobile"`
	Gap            int          `json:"gap"`
	IsAutoFit      bool         `json:"isAutoFit"`
	Preset         LayoutPreset `json:"preset"`
}

func DefaultLayout() LayoutSettings {
	return LayoutSettings{
		ColumnsDesktop: 3,
		ColumnsTablet:  2,
		ColumnsMobile:  1,
		Gap:            10,
		Preset:         PresetStandard,
	}
}

// ApplyPreset returns the settings with the preset's values applied.
// The custom preset only records the name and keeps every value.
func (l LayoutSettings) ApplyPreset(preset LayoutPreset) LayoutSettings {
	switch preset {
	case PresetStandard:
		l = DefaultLayout()
	case PresetAdaptive:
		l = LayoutSettings{ColumnsDesktop: 4, ColumnsTablet: 2, ColumnsMobile: 1, Gap: 8, IsAutoFit: true}
	case PresetMasonry:
		l = LayoutSettings{ColumnsDesktop: 3, ColumnsTablet: 2, ColumnsMobile: 1, Gap: 6}
	case PresetCustom:
	default:
		return l
	}
	l.Preset = preset
	return l
}

// LayoutPatch is a partial layout update. Nil fields keep their prior value.
type LayoutPatch struct {
	ColumnsDesktop *int          `json:"columnsDesktop,omitempty"`
	ColumnsTablet  *int          `json:"columnsTablet,omitempty"`
	ColumnsMobile  *int          `json:"columnsMobile,omitempty"`
	Gap            *int          `json:"gap,omitempty"`
	IsAutoFit      *bool         `json:"isAutoFit,omitempty"`
	Preset         *LayoutPreset `json:"preset,omitempty"`
}

// Merge applies the set fields of patch on top of l. A preset in the patch
// is applied first so explicit values in the same patch win over it.
func (l LayoutSettings) Merge(patch LayoutPatch) LayoutSettings {
	if patch.Preset != nil && patch.Preset.Valid() {
		l = l.ApplyPreset(*patch.Preset)
	}
	touched := false
	setInt := func(dst *int, v *int) {
		if v != nil && *v > 0 {
			*dst = *v
			touched = true
		}
	}
	setInt(&l.ColumnsDesktop, patch.ColumnsDesktop)
	setInt(&l.ColumnsTablet, patch.ColumnsTablet)
	setInt(&l.ColumnsMobile, patch.ColumnsMobile)
	if patch.Gap != nil && *patch.Gap >= 0 {
		l.Gap = *patch.Gap
		touched = true
	}
	if patch.IsAutoFit != nil {
		l.IsAutoFit = *patch.IsAutoFit
		touched = true
	}
	if touched && patch.Preset == nil {
		l.Preset = PresetCustom
	}
	return l
}

// ThemeSettings are global color and radius overrides for the presentation layer.
type ThemeSettings struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	AccentColor     string `json:"accentColor"`
	TextColor       string `json:"textColor"`
	BackgroundColor string `json:"backgroundColor"`
	CardColor       string `json:"cardColor"`
	BorderRadius    string `json:"borderRadius"`
}

func DefaultTheme() ThemeSettings {
	return ThemeSettings{
		PrimaryColor:    "#FACC15",
		SecondaryColor:  "#000000",
		AccentColor:     "#000000",
		TextColor:       "#111827",
		BackgroundColor: "#FFFFFF",
		CardColor:       "#FFFFFF",
		BorderRadius:    "1.5rem",
	}
}

// ThemePatch is a partial theme update. Nil or empty fields keep their prior value.
type ThemePatch struct {
	PrimaryColor    *string `json:"primaryColor,omitempty"`
	SecondaryColor  *string `json:"secondaryColor,omitempty"`
	AccentColor     *string `json:"accentColor,omitempty"`
	TextColor       *string `json:"textColor,omitempty"`
	BackgroundColor *string `json:"backgroundColor,omitempty"`
	CardColor       *string `json:"cardColor,omitempty"`
	BorderRadius    *string `json:"borderRadius,omitempty"`
}

func (t ThemeSettings) Merge(patch ThemePatch) ThemeSettings {
	set := func(dst *string, v *string) {
		if v != nil && *v != "" {
			*dst = *v
		}
	}
	set(&t.PrimaryColor, patch.PrimaryColor)
	set(&t.SecondaryColor, patch.SecondaryColor)
	set(&t.AccentColor, patch.AccentColor)
	set(&t.TextColor, patch.TextColor)
	set(&t.BackgroundColor, patch.BackgroundColor)
	set(&t.CardColor, patch.CardColor)
	set(&t.BorderRadius, patch.BorderRadius)
	return t
}
