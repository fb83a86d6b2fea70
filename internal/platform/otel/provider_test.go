package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/tabletop/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("TABLETOP_OTEL_ENDPOINT", "")
	t.Setenv("TABLETOP_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-tool")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("TABLETOP_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("TABLETOP_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "test-tool")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_RejectsMalformedEnabledFlag(t *testing.T) {
	t.Setenv("TABLETOP_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("TABLETOP_OTEL_ENABLED", "sometimes")

	shutdown, err := otel.Setup(context.Background(), "test-tool")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetupWithConfig_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no actual export happens.
	cfg := otel.Config{Endpoint: "http://192.0.2.1:4318", Enabled: true, SampleRatio: 0.5}

	shutdown, err := otel.SetupWithConfig(context.Background(), "test-tool", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TABLETOP_OTEL_ENDPOINT", "")

	cfg, err := otel.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.Enabled {
		t.Fatal("expected tracing enabled by default")
	}
	if cfg.SampleRatio != 1 {
		t.Fatalf("sample ratio = %v, want 1", cfg.SampleRatio)
	}
}
