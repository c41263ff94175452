package main

import (
	"cofb-go/pkg/api"
	"cofb-go/pkg/log"

	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:        "serve",
	Usage:       "starts the HTTP seal/open service",
	UsageText:   "serve [--listen ADDR]",
	Description: `Starts an HTTP server exposing POST /v1/seal, POST /v1/open and GET /healthz.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "listen",
			Aliases: []string{"l"},
			Usage:   "listen address `ADDR` (defaults to the configured api_listen_address)",
		},
	},
	Action: serveCmd,
}

func serveCmd(c *cli.Context) error {
	cfg := loadConfig()
	setupLogger(cfg)
	defer log.Close()

	addr := c.String("listen")
	if addr == "" {
		addr = cfg.APIListenAddr
	}
	log.Printf("starting seal/open service on %s", addr)
	api.NewServer().Run(addr)
	return nil
}
