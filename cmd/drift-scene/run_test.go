package main

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/drift-scene/config"
	"github.com/lixenwraith/drift-scene/engine"
)

type tickCounter struct {
	ticks    atomic.Int64
	lastCam  atomic.Int64
	switched atomic.Int64
}

func (c *tickCounter) ObserveTick(res engine.TickResult) {
	c.ticks.Add(1)
	c.lastCam.Store(int64(res.ActiveCamera))
	if res.CameraSwitched {
		c.switched.Add(1)
	}
}

func testSetup(t *testing.T) (tcell.SimulationScreen, *config.Config) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 30)
	t.Cleanup(screen.Fini)

	cfg, err := config.Load([]string{"--audio=false", "--seed", "7", "--interval", "2ms"})
	require.NoError(t, err)
	return screen, cfg
}

func TestRunQuitsOnEscape(t *testing.T) {
	screen, cfg := testSetup(t)
	counter := &tickCounter{}

	done := make(chan error, 1)
	go func() {
		done <- run(context.Background(), screen, cfg, zerolog.Nop(), engine.NewMonotonicTimeProvider(), counter)
	}()

	require.Eventually(t, func() bool { return counter.ticks.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)

	screen.InjectKey(tcell.KeyRune, 'l', tcell.ModNone)
	require.Eventually(t, func() bool { return counter.lastCam.Load() == 2 }, 2*time.Second, 5*time.Millisecond)

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop on escape")
	}
	assert.Equal(t, int64(1), counter.switched.Load())
}

func TestRunStopsOnCancel(t *testing.T) {
	screen, cfg := testSetup(t)
	counter := &tickCounter{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, screen, cfg, zerolog.Nop(), engine.NewMonotonicTimeProvider(), counter)
	}()

	require.Eventually(t, func() bool { return counter.ticks.Load() >= 1 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop on cancel")
	}
}

func TestRunRejectsBadMesh(t *testing.T) {
	screen, cfg := testSetup(t)
	cfg.Mesh.Path = t.TempDir() + "/missing.obj"

	err := run(context.Background(), screen, cfg, zerolog.Nop(), engine.NewMonotonicTimeProvider())
	assert.ErrorContains(t, err, "loading mesh")
}
