package main

import (
	stdlog "log"
	"os"

	"cofb-go/pkg/console"
	"cofb-go/pkg/log"

	"github.com/urfave/cli/v2"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func loadConfig() *console.Config {
	cfg, err := console.LoadConfig()
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}

// setupLogger routes log output per config: console by default, the
// SQLite audit sink when log_to_db is set.
func setupLogger(cfg *console.Config) {
	if cfg.LogToDB {
		if err := log.Init(cfg.LogDB); err != nil {
			stdlog.Fatalf("Failed to initialize audit logger: %v", err)
		}
		return
	}
	log.SetStd()
}

func main() {
	app := &cli.App{
		Name:    "cofb",
		Usage:   "Midori-64 COFB authenticated encryption tool",
		Version: Version,
		Commands: []*cli.Command{
			encryptCommand,
			decryptCommand,
			serveCommand,
			logsCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		stdlog.Fatalf("%v", err)
	}
}
