package parameter

// Layout & Margins
const (
	// BottomMargin reserves rows for the HUD (status + key help)
	BottomMargin = 2

	// CellAspect compensates for terminal cells being roughly twice as tall as wide
	CellAspect = 2.0
)

// HUD text
const (
	HUDHelp = "arrows:move/strafe  w/s:tilt  j/k/l/p or 1-4:camera  q/esc:quit"
)

// Glyphs used by the terminal rasterizer
const (
	GlyphVertex = '●'
	GlyphEdge   = '·'
)
