package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/toolair/internal/booking"
	"github.com/toolair/internal/session"
)

const dateLayout = "2006-01-02"

// ReserveCommand returns the reserve command
func ReserveCommand() *cli.Command {
	return &cli.Command{
		Name:      "reserve",
		Usage:     "Reserve a tool for a date range and start checkout",
		ArgsUsage: "TOOL_ID",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Usage:    "First rental day (YYYY-MM-DD)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "Last rental day (YYYY-MM-DD)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "quote-only",
				Usage: "Print the price quote without reserving",
			},
		},
		Action: runReserve,
	}
}

func runReserve(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: tool id")
	}
	toolID, err := parseID(c.Args().Get(0))
	if err != nil {
		return err
	}
	from, err := time.Parse(dateLayout, c.String("from"))
	if err != nil {
		return fmt.Errorf("invalid from date: %w", err)
	}
	to, err := time.Parse(dateLayout, c.String("to"))
	if err != nil {
		return fmt.Errorf("invalid to date: %w", err)
	}

	_, gw, err := setup(c)
	if err != nil {
		return err
	}

	tool, err := gw.GetToolByID(c.Context, toolID)
	if err != nil {
		return fmt.Errorf("failed to fetch tool: %w", err)
	}

	quote := booking.QuoteFor(*tool, from, to)
	fmt.Printf("%s for %d day(s): rental %.0f + deposit %.0f = %.0f\n",
		tool.Name, quote.Days, quote.RentalTotal, quote.Deposit, quote.Payable)
	if c.Bool("quote-only") {
		return nil
	}

	sess := session.New()
	if err := sess.Refresh(c.Context, gw); err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	model := booking.NewModel(gw)
	reservation, err := model.Reserve(c.Context, toolID, from, to, sess.UserID())
	if err != nil {
		return fmt.Errorf("failed to reserve: %w", err)
	}
	fmt.Printf("Reserved as #%d (%s).\n", reservation.ID, reservation.Status.Name)

	url, err := model.Checkout(c.Context)
	if err != nil {
		return fmt.Errorf("failed to start checkout: %w", err)
	}
	fmt.Printf("Complete the payment at: %s\n", url)
	return nil
}
