package display

import (
	"fmt"

	"github.com/eduproject/catalog/models"
)

type GridMode string

const (
	// GridFixed is a grid with a fixed column count per breakpoint.
	GridFixed GridMode = "fixed"
	// GridAutoFit fills the row with as many cards as fit.
	GridAutoFit GridMode = "auto-fit"
	// GridMasonry stacks cards in CSS columns.
	GridMasonry GridMode = "masonry"
)

const (
	fallbackMobile  = 1
	fallbackTablet  = 2
	fallbackDesktop = 3
	fallbackGap     = 10

	autoFitMinWidth = "280px"
)

// Grid holds the listing grid parameters derived from layout settings.
type Grid struct {
	Mode           GridMode `json:"mode"`
	ColumnsMobile  int      `json:"columnsMobile"`
	ColumnsTablet  int      `json:"columnsTablet"`
	ColumnsDesktop int      `json:"columnsDesktop"`
	Gap            int      `json:"gap"`
	Class          string   `json:"class"`
	Style          string   `json:"style,omitempty"`
}

// GridFor derives the grid from layout. Nil settings or out of range values
// fall back to a 1/2/3 column grid.
func GridFor(layout *models.LayoutSettings) Grid {
	g := Grid{
		Mode:           GridFixed,
		ColumnsMobile:  fallbackMobile,
		ColumnsTablet:  fallbackTablet,
		ColumnsDesktop: fallbackDesktop,
		Gap:            fallbackGap,
	}
	if layout != nil {
		g.ColumnsMobile = positiveOr(layout.ColumnsMobile, fallbackMobile)
		g.ColumnsTablet = positiveOr(layout.ColumnsTablet, fallbackTablet)
		g.ColumnsDesktop = positiveOr(layout.ColumnsDesktop, fallbackDesktop)
		if layout.Gap >= 0 {
			g.Gap = layout.Gap
		}
		switch {
		case layout.Preset == models.PresetMasonry:
			g.Mode = GridMasonry
		case layout.IsAutoFit:
			g.Mode = GridAutoFit
		}
	}

	switch g.Mode {
	case GridMasonry:
		g.Class = fmt.Sprintf("columns-%d md:columns-%d lg:columns-%d gap-%d",
			g.ColumnsMobile, g.ColumnsTablet, g.ColumnsDesktop, g.Gap)
	case GridAutoFit:
		g.Class = fmt.Sprintf("grid gap-%d", g.Gap)
		g.Style = fmt.Sprintf("grid-template-columns: repeat(auto-fit, minmax(%s, 1fr))", autoFitMinWidth)
	default:
		g.Class = fmt.Sprintf("grid grid-cols-%d md:grid-cols-%d lg:grid-cols-%d gap-%d",
			g.ColumnsMobile, g.ColumnsTablet, g.ColumnsDesktop, g.Gap)
	}
	return g
}

func positiveOr(n, fallback int) int {
	if n > 0 {
		return n
	}
	return fallback
}
