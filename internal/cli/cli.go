package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/thenoetrevino/cardport/internal/app"
	"github.com/thenoetrevino/cardport/internal/cli/styles"
	"github.com/thenoetrevino/cardport/internal/config"
	"github.com/thenoetrevino/cardport/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	logCloser io.Closer
	owned     bool // App was opened here and must be closed here
}

// NewCLI loads the configuration, sets up logging and opens the App
func NewCLI(ctx context.Context, configPath string) (*CLI, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logCloser, err := logging.Init(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	styles.Init(cfg.Colors, IsTerminal(os.Stdout))

	application, err := app.Open(ctx, cfg, app.WithLogger(logging.Logger))
	if err != nil {
		_ = logCloser.Close()
		return nil, err
	}

	return &CLI{App: application, logCloser: logCloser, owned: true}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.logCloser != nil {
		if cerr := c.logCloser.Close(); cerr != nil {
			slog.Error("Error closing log file", "error", cerr)
		}
	}
	return err
}
