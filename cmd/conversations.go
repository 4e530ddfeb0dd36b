package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/toolair/internal/conversations"
)

// ConversationsCommand returns the conversations command
func ConversationsCommand() *cli.Command {
	return &cli.Command{
		Name:    "conversations",
		Aliases: []string{"conv"},
		Usage:   "List and start conversations",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List your conversations",
				Action: runConversationsList,
			},
			{
				Name:      "start",
				Usage:     "Start (or continue) a conversation about a tool",
				ArgsUsage: "TOOL_ID",
				Action:    runConversationsStart,
			},
		},
	}
}

func runConversationsList(c *cli.Context) error {
	_, gw, err := setup(c)
	if err != nil {
		return err
	}

	list := conversations.NewListModel(gw)
	list.Load(c.Context)

	all := list.Conversations()
	if len(all) == 0 {
		fmt.Println("No conversations.")
		return nil
	}
	for _, conv := range all {
		fmt.Printf("#%d  %s  (renter: %s, lender: %s)\n",
			conv.ID, conv.Tool.Name, conv.Renter.FullName(), conv.Lender.FullName())
	}
	return nil
}

func runConversationsStart(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: tool id")
	}
	toolID, err := parseID(c.Args().Get(0))
	if err != nil {
		return err
	}

	_, gw, err := setup(c)
	if err != nil {
		return err
	}

	list := conversations.NewListModel(gw)
	conv, created, err := list.EnsureForTool(c.Context, toolID)
	if err != nil {
		return fmt.Errorf("failed to start conversation: %w", err)
	}
	if created {
		fmt.Printf("Started conversation #%d about %s\n", conv.ID, conv.Tool.Name)
	} else {
		fmt.Printf("Continuing conversation #%d about %s\n", conv.ID, conv.Tool.Name)
	}
	return nil
}
