package main

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/drift-scene/asset"
	"github.com/lixenwraith/drift-scene/config"
	"github.com/lixenwraith/drift-scene/engine"
	"github.com/lixenwraith/drift-scene/input"
	"github.com/lixenwraith/drift-scene/parameter"
	"github.com/lixenwraith/drift-scene/render"
	"github.com/lixenwraith/drift-scene/telemetry"
)

// errQuit ends the frame loop on operator request
var errQuit = errors.New("quit requested")

// run builds the scene and drives it until quit, ctx cancellation or a failure
// The event pump and the frame loop run under one errgroup; the first to stop ends both
func run(ctx context.Context, screen tcell.Screen, cfg *config.Config, logger zerolog.Logger, clock engine.TimeProvider, observers ...engine.Observer) error {
	simCfg, err := cfg.Simulation(clock.Now())
	if err != nil {
		return err
	}
	sim, err := engine.NewSimulation(simCfg)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}
	mesh, err := cfg.LoadMesh()
	if err != nil {
		return fmt.Errorf("loading mesh: %w", err)
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}
	recorder, err := telemetry.New(telemetry.Meter())
	if err != nil {
		return err
	}

	renderer := render.NewTerminalRenderer(screen, [2]*asset.Mesh{mesh, mesh}, asset.DefaultSkins(), cfg.Camera.Aspect)
	orchestrator := engine.NewOrchestrator(sim, engine.NewSimClock(clock), renderer, cfg.Frame.StatsInterval, logger,
		append(observers, recorder)...)

	logger.Debug().Uint64("seed", simCfg.Seed).Str("mesh", mesh.Name).Msg("scene ready")

	events := make(chan tcell.Event, parameter.InputQueueSize)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		screen.ChannelEvents(events, gctx.Done())
		return nil
	})

	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("frame loop panic: %v\n%s", r, debug.Stack())
			}
		}()
		return frameLoop(gctx, screen, renderer, orchestrator, input.NewCollector(keys), events, cfg.Frame.Interval)
	})

	err = g.Wait()
	s := recorder.Summary()
	logger.Info().
		Uint64("ticks", s.Ticks).
		Uint64("collisions", s.Collisions).
		Uint64("resets", s.Resets).
		Uint64("camera_switches", s.CameraSwitches).
		Uint64("rejected", s.Rejected).
		Msg("session summary")

	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// frameLoop drains input between ticks and runs exactly one tick per interval
func frameLoop(ctx context.Context, screen tcell.Screen, renderer *render.TerminalRenderer, orchestrator *engine.Orchestrator,
	collector *input.Collector, events <-chan tcell.Event, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				// Screen finalized underneath us
				return errQuit
			}
			if collector.Handle(ev) == input.IntentQuit {
				return errQuit
			}

		case <-ticker.C:
			frame := collector.Take()
			if frame.Resized {
				renderer.UpdateDimensions(screen.Size())
				screen.Sync()
			}
			orchestrator.Frame(frame)
		}
	}
}
