package main

import (
	"fmt"

	"cofb-go/pkg/log"

	"github.com/urfave/cli/v2"
)

const logsCommandHelpTemplate = `NAME:
   {{.HelpName}} - {{.Usage}}

USAGE:
   {{.HelpName}} {{if .UsageText}}{{.UsageText}}{{else}}[command options]{{end}}
{{if .Description}}
DESCRIPTION:
   {{.Description | Indent 4}}
{{end}}
OPTIONS:
{{range .VisibleFlags}}   {{.}}
{{end}}
EXAMPLES:
     # Show the last 20 audit entries from the default database
     cofb logs -n 20

     # Read a specific database file
     cofb logs -f /var/log/cofb.db

`

var logsCommand = &cli.Command{
	Name:               "logs",
	Usage:              "retrieve audit log entries from the SQLite database",
	UsageText:          "logs [command options]",
	Description:        `Retrieves JSON audit events written by encrypt/decrypt/serve sessions when log_to_db is enabled.`,
	CustomHelpTemplate: logsCommandHelpTemplate,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "dbfile",
			Aliases: []string{"f"},
			Usage:   "audit database file `PATH` (defaults to the configured log_db)",
		},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "number of most recent entries `NUMBER`",
			Value:   100,
		},
		&cli.BoolFlag{
			Name:    "pretty",
			Aliases: []string{"p"},
			Usage:   "prefix each entry with its id and insertion time",
		},
	},
	Action: logsCmd,
}

func logsCmd(c *cli.Context) error {
	cfg := loadConfig()
	dbFile := c.String("dbfile")
	if dbFile == "" {
		dbFile = cfg.LogDB
	}
	count := c.Int("count")
	if count <= 0 {
		return cli.Exit("Error: --count (-n) must be a positive number.", 1)
	}

	if err := log.Init(dbFile); err != nil {
		return cli.Exit(fmt.Sprintf("Error initializing logger (required for DB access): %v", err), 1)
	}
	defer log.Close()

	entries, err := log.GetLastNLogs(count)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error retrieving logs: %v", err), 1)
	}
	if len(entries) == 0 {
		fmt.Println("No log entries found.")
		return nil
	}

	for _, entry := range entries {
		if c.Bool("pretty") {
			fmt.Printf("%d\t%s\t%s", entry.ID, entry.InsertedAt.Format("2006-01-02 15:04:05"), entry.LogData)
		} else {
			fmt.Print(entry.LogData)
		}
	}
	return nil
}
