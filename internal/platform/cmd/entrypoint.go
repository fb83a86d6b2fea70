// Package cmd holds startup helpers shared by the tabletop command-line tools.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/louisbranch/tabletop/internal/platform/config"
	"github.com/louisbranch/tabletop/internal/platform/otel"
)

const defaultOTelShutdownTimeout = 5 * time.Second

// Tool identifiers used for telemetry service names.
const (
	ToolCampaignProps = "campaignprops"
	ToolI18nStatus    = "i18nstatus"
)

// RunOptions controls shared entrypoint behavior for tools.
type RunOptions struct {
	// ShutdownTimeout sets the timeout used when stopping telemetry.
	ShutdownTimeout time.Duration
	// Logger receives shutdown failures. Defaults to slog.Default().
	Logger *slog.Logger
}

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// ParseConfigFromArgs loads defaults from env and then parses flags.
func ParseConfigFromArgs[T any](cfg *T, fs *flag.FlagSet, args []string) error {
	if err := ParseConfig(cfg); err != nil {
		return err
	}
	return ParseArgs(fs, args)
}

// RunWithTelemetry configures tracing and executes a tool run function.
func RunWithTelemetry(ctx context.Context, tool string, run func(context.Context) error) error {
	return RunWithTelemetryAndOptions(ctx, tool, RunOptions{}, run)
}

// RunWithTelemetryAndOptions configures tracing and executes a tool run function.
func RunWithTelemetryAndOptions(ctx context.Context, tool string, options RunOptions, run func(context.Context) error) error {
	tool = strings.TrimSpace(tool)
	if tool == "" {
		return fmt.Errorf("tool name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	shutdown, err := otel.Setup(ctx, tool)
	if err != nil {
		return err
	}
	defer func() {
		shutdownTimeout := options.ShutdownTimeout
		if shutdownTimeout <= 0 {
			shutdownTimeout = defaultOTelShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn("otel shutdown failed", "tool", tool, "error", err)
		}
	}()
	return run(ctx)
}
