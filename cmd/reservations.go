package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/toolair/internal/listing"
	"github.com/toolair/internal/reviews"
	"github.com/toolair/pkg/models"
)

// ReservationsCommand returns the reservations command
func ReservationsCommand() *cli.Command {
	return &cli.Command{
		Name:    "reservations",
		Aliases: []string{"res"},
		Usage:   "List reservations and rate finished ones",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List your reservations as borrower",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "search",
						Aliases: []string{"s"},
						Usage:   "Filter by text",
					},
					&cli.StringFlag{
						Name:  "status",
						Usage: "Filter by status code",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort key: tool, from, to, status, price",
						Value: "from",
					},
					&cli.IntFlag{
						Name:  "page",
						Usage: "Page number",
						Value: 1,
					},
					&cli.Int64Flag{
						Name:  "tool",
						Usage: "List reservations against an owned tool instead",
					},
				},
				Action: runReservationsList,
			},
			{
				Name:      "rate",
				Usage:     "Rate the counterparty of a finished reservation",
				ArgsUsage: "RESERVATION_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "role",
						Usage:    "Your role: owner or borrower",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "score",
						Usage:    "Score from 1 to 5",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "comment",
						Usage: "Optional comment",
					},
					&cli.Int64Flag{
						Name:  "tool",
						Usage: "Owned tool the reservation belongs to (owner role)",
					},
				},
				Action: runReservationsRate,
			},
		},
	}
}

// reservationPipeline builds the filter/sort/paginate model with the sort
// keys the reservation table exposes.
func reservationPipeline(pageSize int) *listing.Model[models.Reservation] {
	m := listing.NewModel(pageSize, func(r models.Reservation) listing.Fields {
		fields := listing.Fields{
			Name:       r.Tool.Name,
			StatusName: r.Status.Name,
			StatusCode: r.Status.Code,
		}
		if r.Tool.Category != nil {
			fields.CategoryName = r.Tool.Category.Name
			fields.CategoryCode = r.Tool.Category.Code
		}
		return fields
	})
	m.RegisterKey("from", listing.Descending, func(a, b models.Reservation) int {
		return a.DateFrom.Compare(b.DateFrom)
	})
	m.RegisterKey("to", listing.Descending, func(a, b models.Reservation) int {
		return a.DateTo.Compare(b.DateTo)
	})
	m.RegisterKey("tool", listing.Ascending, func(a, b models.Reservation) int {
		return listing.CompareNames(a.Tool.Name, b.Tool.Name)
	})
	m.RegisterKey("status", listing.Ascending, func(a, b models.Reservation) int {
		return listing.CompareNames(a.Status.Name, b.Status.Name)
	})
	m.RegisterKey("price", listing.Descending, func(a, b models.Reservation) int {
		return listing.CompareNumbers(a.Tool.RentalPrice, b.Tool.RentalPrice)
	})
	return m
}

func runReservationsList(c *cli.Context) error {
	cfg, gw, err := setup(c)
	if err != nil {
		return err
	}

	model := reviews.NewModel(gw)
	if toolID := c.Int64("tool"); toolID > 0 {
		model.LoadForTool(c.Context, toolID)
	} else {
		model.LoadMine(c.Context)
	}

	pipeline := reservationPipeline(cfg.Listing.PageSize)
	pipeline.SetText(c.String("search"))
	pipeline.SetStatus(c.String("status"))
	if active, _ := pipeline.Sort(); active != c.String("sort") {
		pipeline.ToggleSort(c.String("sort"))
	}
	pipeline.SetPage(c.Int("page"))

	page := pipeline.Apply(model.Reservations())
	if len(page.Items) == 0 {
		fmt.Println("No reservations match.")
		if options := reviews.StatusOptions(model.Reservations()); len(options) > 0 {
			codes := []string{"ALL"}
			for _, option := range options {
				codes = append(codes, option.Code)
			}
			fmt.Printf("Statuses: %s\n", strings.Join(codes, ", "))
		}
		return nil
	}
	for _, r := range page.Items {
		ratable := ""
		if state, err := reviews.SlotFor(r, models.RaterBorrower); err == nil && state == reviews.EligibleUnrated {
			ratable = "  [can rate]"
		}
		fmt.Printf("#%d  %-24s %s - %s  %-12s %8.0f%s\n",
			r.ID, r.Tool.Name,
			r.DateFrom.Format("2006.01.02"), r.DateTo.Format("2006.01.02"),
			r.Status.Name, r.Tool.RentalPrice, ratable)
	}
	fmt.Printf("Page %d/%d\n", page.Number, page.TotalPages)
	return nil
}

func runReservationsRate(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: reservation id")
	}
	reservationID, err := parseID(c.Args().Get(0))
	if err != nil {
		return err
	}

	var role models.RaterRole
	switch strings.ToLower(c.String("role")) {
	case "owner":
		role = models.RaterOwner
	case "borrower":
		role = models.RaterBorrower
	default:
		return fmt.Errorf("role must be owner or borrower")
	}

	_, gw, err := setup(c)
	if err != nil {
		return err
	}

	model := reviews.NewModel(gw)
	if role == models.RaterOwner {
		toolID := c.Int64("tool")
		if toolID <= 0 {
			return fmt.Errorf("--tool is required when rating as owner")
		}
		model.LoadForTool(c.Context, toolID)
	} else {
		model.LoadMine(c.Context)
	}

	if err := model.Submit(c.Context, reservationID, role, c.Int("score"), c.String("comment")); err != nil {
		return fmt.Errorf("failed to submit rating: %w", err)
	}
	fmt.Println("Rating submitted.")
	return nil
}
