package cmd

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/toolair/internal/conversations"
)

// MessagesCommand returns the messages command
func MessagesCommand() *cli.Command {
	return &cli.Command{
		Name:    "messages",
		Aliases: []string{"msg"},
		Usage:   "Read and send messages in a conversation",
		Subcommands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "Show the messages of a conversation",
				ArgsUsage: "CONVERSATION_ID",
				Action:    runMessagesShow,
			},
			{
				Name:      "send",
				Usage:     "Send a message to a conversation",
				ArgsUsage: "CONVERSATION_ID TEXT",
				Action:    runMessagesSend,
			},
		},
	}
}

func runMessagesShow(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: conversation id")
	}
	conversationID, err := parseID(c.Args().Get(0))
	if err != nil {
		return err
	}

	_, gw, err := setup(c)
	if err != nil {
		return err
	}

	thread := conversations.NewThreadModel(gw)
	thread.Select(conversationID)
	thread.Load(c.Context)

	messages := thread.Messages()
	if len(messages) == 0 {
		fmt.Println("No messages.")
		return nil
	}
	for _, msg := range messages {
		seen := ""
		if msg.SeenByReceiver {
			seen = " (seen)"
		}
		fmt.Printf("[%s] %s: %s%s\n",
			msg.SentAt.Format("2006-01-02 15:04"), msg.SentBy.FullName(), msg.Text, seen)
	}
	return nil
}

func runMessagesSend(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("missing required arguments: conversation id and text")
	}
	conversationID, err := parseID(c.Args().Get(0))
	if err != nil {
		return err
	}
	text := c.Args().Get(1)

	_, gw, err := setup(c)
	if err != nil {
		return err
	}

	thread := conversations.NewThreadModel(gw)
	thread.Select(conversationID)
	thread.SetCompose(text)
	if err := thread.Send(c.Context); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	fmt.Printf("Sent. Conversation now has %d messages.\n", len(thread.Messages()))
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
