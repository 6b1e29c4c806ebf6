package telemetry

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ServiceName tags every exported metric
const ServiceName = "drift-scene"

// Config selects where metrics go
type Config struct {
	Enabled bool

	// Writer receives one JSON document per export (required when enabled)
	Writer io.Writer

	// Interval between periodic exports; shutdown always exports once more
	Interval time.Duration
}

// Provider owns the SDK meter provider, or nothing when disabled
type Provider struct {
	meterProvider *sdkmetric.MeterProvider
}

// Setup builds a periodic stdout exporter on cfg.Writer and installs it as the global meter provider
// Disabled returns a provider whose Meter is a no-op and leaves the global untouched
func Setup(cfg Config) (*Provider, error) {
	p := &Provider{}
	if !cfg.Enabled {
		return p, nil
	}
	if cfg.Writer == nil {
		return nil, fmt.Errorf("telemetry enabled without a writer")
	}
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("telemetry interval %v must be > 0", cfg.Interval)
	}

	exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(cfg.Writer))
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := resource.New(context.Background(),
		resource.WithAttributes(semconv.ServiceName(ServiceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.Interval))),
	)
	otel.SetMeterProvider(p.meterProvider)
	return p, nil
}

// Meter returns a meter from the SDK provider, or a no-op meter when disabled
func (p *Provider) Meter() metric.Meter {
	if p.meterProvider == nil {
		return noop.Meter{}
	}
	return p.meterProvider.Meter(instrumentationName)
}

// Enabled reports whether metrics are exported
func (p *Provider) Enabled() bool {
	return p.meterProvider != nil
}

// Shutdown exports pending data and stops the reader
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	if err := p.meterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("metric shutdown failed: %w", err)
	}
	return nil
}
