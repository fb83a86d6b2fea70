package campaignprops

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/louisbranch/tabletop/internal/campaign/light"
	"github.com/louisbranch/tabletop/internal/campaign/prefs"
	"github.com/louisbranch/tabletop/internal/campaign/props"
	"github.com/louisbranch/tabletop/internal/platform/alert"
)

// Run builds a registry from cfg and writes its summary to out. In watch mode
// it then replaces the registry's light sources each time the lights file
// changes, until ctx is done.
func Run(ctx context.Context, cfg Config, out io.Writer, logger *slog.Logger) error {
	if out == nil {
		return errors.New("output is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if logger == nil {
		logger = slog.Default()
	}
	preferences, err := prefs.FromEnv()
	if err != nil {
		return err
	}
	reporter := alert.NewLogReporter(logger, cfg.Locale)

	opts := []props.Option{
		props.WithPreferences(preferences),
		props.WithReporter(reporter),
		props.WithLogger(logger),
	}
	if cfg.LightsPath != "" {
		opts = append(opts, props.WithLightProvider(light.FileProvider{Path: cfg.LightsPath}))
	}
	registry := props.New(ctx, opts...)

	// out is shared with the watcher goroutine.
	var outMu sync.Mutex
	write := func() error {
		outMu.Lock()
		defer outMu.Unlock()
		return Summarize(registry).Write(out, cfg.Format)
	}
	if err := write(); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}

	watcher := light.NewWatcher(cfg.LightsPath,
		func(groups map[string]*light.Group) {
			registry.ReplaceLightSources(groups)
			logger.InfoContext(ctx, "light sources reloaded", "path", cfg.LightsPath, "categories", len(groups))
			outMu.Lock()
			fmt.Fprintf(out, "reloaded %d light categories from %s\n", len(groups), cfg.LightsPath)
			outMu.Unlock()
		},
		func(err error) { reporter.Report(ctx, err) },
	)
	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("watch lights: %w", err)
	}
	defer watcher.Stop()
	logger.InfoContext(ctx, "watching light sources", "path", cfg.LightsPath)
	<-ctx.Done()
	return nil
}
