package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drift-scene/asset"
	"github.com/lixenwraith/drift-scene/engine"
	"github.com/lixenwraith/drift-scene/parameter"
)

// TerminalRenderer rasterizes each body's wireframe through its MVP onto a tcell screen
type TerminalRenderer struct {
	mu     sync.Mutex
	screen tcell.Screen
	meshes [2]*asset.Mesh
	skins  [2]asset.Skin
	aspect float32

	width  int
	height int
	scene  Viewport
}

// NewTerminalRenderer creates a renderer sized to the screen's current dimensions
// aspect is the projection's width/height ratio; the scene viewport is letterboxed to it
func NewTerminalRenderer(screen tcell.Screen, meshes [2]*asset.Mesh, skins [2]asset.Skin, aspect float32) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		meshes: meshes,
		skins:  skins,
		aspect: aspect,
	}
	w, h := screen.Size()
	r.UpdateDimensions(w, h)
	return r
}

// UpdateDimensions recomputes the scene viewport for a new terminal size
func (r *TerminalRenderer) UpdateDimensions(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.width, r.height = width, height

	sceneH := max(height-parameter.BottomMargin, 1)
	sceneW := int(float32(sceneH) * parameter.CellAspect * r.aspect)
	if sceneW > width {
		sceneW = max(width, 1)
		sceneH = max(int(float32(sceneW)/(parameter.CellAspect*r.aspect)), 1)
	}
	r.scene = Viewport{
		X:      (width - sceneW) / 2,
		Y:      (height - parameter.BottomMargin - sceneH) / 2,
		Width:  sceneW,
		Height: sceneH,
	}
}

// Scene returns the current scene viewport
func (r *TerminalRenderer) Scene() Viewport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scene
}

// Publish draws one frame and shows it
func (r *TerminalRenderer) Publish(p engine.Publication) {
	r.mu.Lock()
	defer r.mu.Unlock()

	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	for i := range p.Bodies {
		if r.meshes[i] == nil {
			continue
		}
		r.drawBody(p.Bodies[i], r.meshes[i], r.skins[i], defaultStyle)
	}

	r.drawStatusBar(p, defaultStyle)
	r.drawHelp(defaultStyle)

	r.screen.Show()
}

// drawBody draws edges first so vertices stay on top
func (r *TerminalRenderer) drawBody(body engine.BodyFrame, mesh *asset.Mesh, skin asset.Skin, defaultStyle tcell.Style) {
	type projected struct {
		x, y int
		ok   bool
	}
	pts := make([]projected, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		x, y, ndc, ok := Project(body.MVP, v, r.scene)
		pts[i] = projected{x: x, y: y, ok: ok && nearView(ndc)}
	}

	edgeStyle := defaultStyle.Foreground(skin.Color).Dim(true)
	for _, e := range mesh.Edges {
		a, b := pts[e[0]], pts[e[1]]
		if !a.ok || !b.ok {
			continue
		}
		line(a.x, a.y, b.x, b.y, func(x, y int) {
			if r.scene.InView(x, y) {
				r.screen.SetContent(x, y, skin.Edge, nil, edgeStyle)
			}
		})
	}

	vertexStyle := defaultStyle.Foreground(skin.Color).Bold(true)
	for _, pt := range pts {
		if pt.ok && r.scene.InView(pt.x, pt.y) {
			r.screen.SetContent(pt.x, pt.y, skin.Vertex, nil, vertexStyle)
		}
	}
}

// drawStatusBar draws the state badge followed by camera, progress and body positions
func (r *TerminalRenderer) drawStatusBar(p engine.Publication, defaultStyle tcell.Style) {
	statusY := r.height - parameter.BottomMargin
	if statusY < 0 {
		return
	}

	var badgeBg tcell.Color
	switch p.State {
	case engine.StateColliding:
		badgeBg = RgbStateCollidingBg
	case engine.StateReset:
		badgeBg = RgbStateResetBg
	default:
		badgeBg = RgbStateDriftingBg
	}
	badge := fmt.Sprintf(" %-9s ", p.State)
	x := r.drawText(0, statusY, badge, defaultStyle.Foreground(RgbStatusText).Background(badgeBg))

	a, b := p.Bodies[0].Translation, p.Bodies[1].Translation
	status := fmt.Sprintf(" cam %d/%d  progress %.2f  resets %d  A(%+.2f,%+.2f)  B(%+.2f,%+.2f)",
		p.Camera+1, p.Cameras, p.Progress, p.Resets, a.X(), a.Y(), b.X(), b.Y())
	x = r.drawText(x, statusY, status, defaultStyle.Foreground(RgbStatusText))

	if p.FrameMs > 0 {
		r.drawText(x, statusY, fmt.Sprintf("  %.2f ms/frame", p.FrameMs), defaultStyle.Foreground(RgbStatsText))
	}
}

func (r *TerminalRenderer) drawHelp(defaultStyle tcell.Style) {
	helpY := r.height - parameter.BottomMargin + 1
	if helpY < 0 || helpY >= r.height {
		return
	}
	r.drawText(0, helpY, parameter.HUDHelp, defaultStyle.Foreground(RgbHelpText))
}

// drawText writes s from x, clipped to the screen width, and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
