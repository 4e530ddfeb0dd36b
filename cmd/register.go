package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/toolair/pkg/models"
)

// RegisterCommand returns the register command
func RegisterCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Create a new user account",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "first-name",
				Usage:    "First name",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "last-name",
				Usage:    "Last name",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "email",
				Usage:    "Email address",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "password",
				Usage:    "Password",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "phone",
				Usage: "Phone number",
			},
			&cli.StringFlag{
				Name:  "postal-code",
				Usage: "Postal code",
			},
			&cli.StringFlag{
				Name:  "city",
				Usage: "City",
			},
			&cli.StringFlag{
				Name:  "street",
				Usage: "Street address",
			},
		},
		Action: runRegister,
	}
}

func runRegister(c *cli.Context) error {
	_, gw, err := setup(c)
	if err != nil {
		return err
	}

	user, err := gw.Register(c.Context, models.RegisterPayload{
		FirstName:     c.String("first-name"),
		LastName:      c.String("last-name"),
		Email:         c.String("email"),
		Password:      c.String("password"),
		PhoneNumber:   c.String("phone"),
		PostalCode:    c.String("postal-code"),
		City:          c.String("city"),
		StreetAddress: c.String("street"),
	})
	if err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}
	fmt.Printf("Registered %s (user #%d)\n", user.FullName(), user.ID)
	return nil
}
