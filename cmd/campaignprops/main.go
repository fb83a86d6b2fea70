package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	platformcmd "github.com/louisbranch/tabletop/internal/platform/cmd"
	"github.com/louisbranch/tabletop/internal/platform/config"
	"github.com/louisbranch/tabletop/internal/tools/campaignprops"
)

func main() {
	cfg, err := campaignprops.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	options := platformcmd.RunOptions{Logger: logger}
	if err := platformcmd.RunWithTelemetryAndOptions(ctx, platformcmd.ToolCampaignProps, options, func(ctx context.Context) error {
		return campaignprops.Run(ctx, cfg, os.Stdout, logger)
	}); err != nil {
		config.Exitf("Error: %v", err)
	}
}
