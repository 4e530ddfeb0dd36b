package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/toolair/internal/reviews"
	"github.com/toolair/internal/session"
	"github.com/toolair/pkg/models"
)

// ToolsCommand returns the tools command
func ToolsCommand() *cli.Command {
	return &cli.Command{
		Name:  "tools",
		Usage: "Inspect tool listings",
		Subcommands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "Show one tool with its owner's review statistics",
				ArgsUsage: "TOOL_ID",
				Action:    runToolsShow,
			},
			{
				Name:   "mine",
				Usage:  "List the tools you have listed",
				Action: runToolsMine,
			},
			{
				Name:  "upload",
				Usage: "List a new tool for rent",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Tool name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "description",
						Usage: "Tool description",
					},
					&cli.Float64Flag{
						Name:  "rental-price",
						Usage: "Rental price per day",
					},
					&cli.Float64Flag{
						Name:  "deposit-price",
						Usage: "Deposit charged on checkout",
					},
					&cli.StringFlag{
						Name:     "category",
						Usage:    "Category code",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "status",
						Usage: "Status code",
						Value: "ACTIVE",
					},
					&cli.StringSliceFlag{
						Name:  "image",
						Usage: "Image URL, repeatable",
					},
				},
				Action: runToolsUpload,
			},
		},
	}
}

func runToolsShow(c *cli.Context) error {
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

	tool, err := gw.GetToolByID(c.Context, toolID)
	if err != nil {
		return fmt.Errorf("failed to fetch tool: %w", err)
	}

	fmt.Printf("%s  (%.0f/day, deposit %.0f)\n", tool.Name, tool.RentalPrice, tool.DepositPrice)
	if tool.Description != "" {
		fmt.Println(tool.Description)
	}
	if tool.Category != nil {
		fmt.Printf("Category: %s\n", tool.Category.Name)
	}
	if tool.Status != nil {
		fmt.Printf("Status: %s\n", tool.Status.Name)
	}

	if tool.Owner != nil {
		fmt.Printf("Owner: %s\n", tool.Owner.FullName())
		if stats := reviews.NewModel(gw).Statistics(c.Context, tool.Owner.ID); stats != nil {
			fmt.Printf("Owner rating: %.1f (%d as owner, %d as borrower)\n",
				stats.AverageRating, len(stats.AsOwner), len(stats.AsBorrower))
		}
	}
	return nil
}

func runToolsUpload(c *cli.Context) error {
	_, gw, err := setup(c)
	if err != nil {
		return err
	}

	tool, err := gw.UploadTool(c.Context, models.UploadToolPayload{
		Name:           c.String("name"),
		Description:    c.String("description"),
		RentalPrice:    c.Float64("rental-price"),
		DepositPrice:   c.Float64("deposit-price"),
		LookupCategory: c.String("category"),
		LookupStatus:   c.String("status"),
		Images:         c.StringSlice("image"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload tool: %w", err)
	}
	fmt.Printf("Listed %s as #%d\n", tool.Name, tool.ID)
	return nil
}

func runToolsMine(c *cli.Context) error {
	_, gw, err := setup(c)
	if err != nil {
		return err
	}

	sess := session.New()
	if err := sess.Refresh(c.Context, gw); err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	tools, err := gw.GetToolsForUser(c.Context, sess.UserID())
	if err != nil {
		return fmt.Errorf("failed to list tools: %w", err)
	}
	if len(tools) == 0 {
		fmt.Println("You have no tools listed.")
		return nil
	}
	for _, tool := range tools {
		status := ""
		if tool.Status != nil {
			status = "  " + tool.Status.Name
		}
		fmt.Printf("#%d  %-24s %8.0f/day%s\n", tool.ID, tool.Name, tool.RentalPrice, status)
	}
	return nil
}
