package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/drift-scene/audio"
	"github.com/lixenwraith/drift-scene/config"
	"github.com/lixenwraith/drift-scene/engine"
	"github.com/lixenwraith/drift-scene/logging"
	"github.com/lixenwraith/drift-scene/telemetry"
)

const metricsShutdownTimeout = 2 * time.Second

// screenGuard makes Fini idempotent so the crash handler and normal exit can both call it
type screenGuard struct {
	tcell.Screen
	once sync.Once
}

func (s *screenGuard) Fini() {
	s.once.Do(s.Screen.Fini)
}

// crashHandler restores the terminal before reporting a panic
func crashHandler(screen *screenGuard, what string) func() {
	return func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			// \r\n keeps output readable if the terminal is still raw
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", what, r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}
}

// shutdownMetrics flushes the last export into the log file before it closes
func shutdownMetrics(p *telemetry.Provider, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		logger.Warn().Err(err).Msg("telemetry shutdown")
	}
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := logging.Setup(cfg.LoggingOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	metrics, err := telemetry.Setup(cfg.TelemetryConfig(logFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up telemetry: %v\n", err)
		logFile.Close()
		os.Exit(1)
	}
	defer shutdownMetrics(metrics, logger)

	raw, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := raw.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen := &screenGuard{Screen: raw}
	defer screen.Fini()
	defer crashHandler(screen, "DRIFT-SCENE")()

	feedback := audio.Open(cfg.AudioConfig(), logger)
	defer feedback.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("config_file", cfg.File).
		Float64("period", cfg.Scene.Period).
		Str("progress_mode", cfg.Scene.ProgressMode).
		Int("cameras", len(cfg.Cameras)).
		Bool("audio", cfg.Audio.Enabled).
		Msg("starting")

	runErr := run(ctx, screen, cfg, logger, engine.NewMonotonicTimeProvider(), feedback)

	screen.Fini()
	if runErr != nil {
		logger.Error().Err(runErr).Msg("stopped with error")
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		shutdownMetrics(metrics, logger)
		logFile.Close()
		os.Exit(1)
	}
	logger.Info().Msg("shutdown")
}
