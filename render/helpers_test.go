package render

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/drift-scene/engine"
	"github.com/lixenwraith/drift-scene/input"
)

var (
	testEpoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	input0    input.Frame
)

type captureRenderer struct {
	pubs []engine.Publication
}

func (c *captureRenderer) Publish(p engine.Publication) { c.pubs = append(c.pubs, p) }

func zerologNop() zerolog.Logger { return zerolog.Nop() }
