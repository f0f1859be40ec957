package main

import (
	"os"

	"github.com/mrlokans/library/internal/cli"
	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	root := cli.NewRootCommand(cfg, Version+" ("+Commit+")", entrypoint.Run)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
