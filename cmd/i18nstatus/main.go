package main

import (
	"context"
	"flag"
	"os"

	platformcmd "github.com/louisbranch/tabletop/internal/platform/cmd"
	"github.com/louisbranch/tabletop/internal/platform/config"
	"github.com/louisbranch/tabletop/internal/tools/i18nstatus"
)

func main() {
	cfg, err := i18nstatus.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	err = platformcmd.RunWithTelemetry(context.Background(), platformcmd.ToolI18nStatus, func(context.Context) error {
		return i18nstatus.Run(cfg, os.Stdout)
	})
	if err != nil {
		config.Exitf("Error: %v", err)
	}
}
