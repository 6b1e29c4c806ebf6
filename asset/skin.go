package asset

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drift-scene/parameter"
)

// Skin is the terminal stand-in for a body's texture
type Skin struct {
	Vertex rune
	Edge   rune
	Color  tcell.Color
}

// DefaultSkins returns one skin per body
func DefaultSkins() [2]Skin {
	return [2]Skin{
		{Vertex: parameter.GlyphVertex, Edge: parameter.GlyphEdge, Color: tcell.NewRGBColor(80, 200, 255)},
		{Vertex: parameter.GlyphVertex, Edge: parameter.GlyphEdge, Color: tcell.NewRGBColor(255, 140, 60)},
	}
}
