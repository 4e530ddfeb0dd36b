package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/toolair/cmd"
)

const (
	version = "0.1.0"
)

func main() {
	app := &cli.App{
		Name:    "toolair",
		Usage:   "Client for the ToolAir peer-to-peer tool rental marketplace",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load configuration from `FILE`",
			},
		},
		Commands: []*cli.Command{
			cmd.ConversationsCommand(),
			cmd.MessagesCommand(),
			cmd.NotificationsCommand(),
			cmd.RegisterCommand(),
			cmd.ReservationsCommand(),
			cmd.ReserveCommand(),
			cmd.ToolsCommand(),
			cmd.ConfigCommand(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
