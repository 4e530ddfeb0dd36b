package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/toolair/internal/config"
	"github.com/toolair/internal/gateway"
)

// setup loads the configuration and builds the gateway client every
// command runs against.
func setup(c *cli.Context) (*config.Config, *gateway.Client, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	gw := gateway.New(cfg.Backend.BaseURL,
		gateway.WithTimeout(time.Duration(cfg.Backend.TimeoutSeconds)*time.Second),
		gateway.WithRateLimit(cfg.Backend.RateLimit, cfg.Backend.RateBurst),
	)
	return cfg, gw, nil
}
