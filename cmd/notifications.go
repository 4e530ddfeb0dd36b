package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/toolair/internal/notifications"
)

// NotificationsCommand returns the notifications command
func NotificationsCommand() *cli.Command {
	return &cli.Command{
		Name:    "notifications",
		Aliases: []string{"activity"},
		Usage:   "Show and acknowledge notifications",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List notification groups, newest first",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "unread",
						Aliases: []string{"u"},
						Usage:   "Show only notifications waiting for an acknowledge",
					},
				},
				Action: runNotificationsList,
			},
			{
				Name:      "ack",
				Usage:     "Acknowledge the group containing the given event id",
				ArgsUsage: "EVENT_ID",
				Action:    runNotificationsAck,
			},
		},
	}
}

func runNotificationsList(c *cli.Context) error {
	_, gw, err := setup(c)
	if err != nil {
		return err
	}

	model := notifications.NewModel(gw)
	if c.Bool("unread") {
		model.LoadUnread(c.Context)
	} else {
		model.Load(c.Context)
	}

	groups := model.Groups()
	if len(groups) == 0 {
		fmt.Println("No notifications.")
		return nil
	}
	for _, group := range groups {
		marker := "*"
		if group.Acknowledged {
			marker = " "
		}
		count := ""
		if group.Count > 1 {
			count = fmt.Sprintf(" (x%d)", group.Count)
		}
		fmt.Printf("%s [%s] %s%s\n", marker, group.CreatedAt.Format("Jan 02 15:04"), group.Message, count)
	}
	return nil
}

func runNotificationsAck(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: event id")
	}
	eventID, err := parseID(c.Args().Get(0))
	if err != nil {
		return err
	}

	_, gw, err := setup(c)
	if err != nil {
		return err
	}

	model := notifications.NewModel(gw)
	model.Load(c.Context)

	for _, group := range model.Groups() {
		for _, id := range group.AllIDs {
			if id != eventID {
				continue
			}
			if err := model.AcknowledgeGroup(c.Context, group); err != nil {
				return fmt.Errorf("failed to acknowledge group: %w", err)
			}
			fmt.Printf("Acknowledged %d notification(s).\n", group.Count)
			return nil
		}
	}
	return fmt.Errorf("no notification group contains event %d", eventID)
}
