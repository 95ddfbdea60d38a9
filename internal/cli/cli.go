// Package cli implements the polyparser command-line interface.
//
// The CLI converts between the game's binary level formats and JSON, and
// renders bridge diagrams. Conversion direction is chosen from the input
// file's suffix:
//
//   - *.layout       -> *.layout.json
//   - *.layout.json  -> *.layout (re-encoded at the current format version)
//   - *.slot         -> *.slot.json (one way; slot files cannot be rebuilt)
//
// All commands support --verbose (-v) for debug-level logging and --silent
// (-s) to suppress everything below the error level. Loggers are passed
// through context.Context.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ashduino101/polyparser/pkg/buildinfo"
	"github.com/ashduino101/polyparser/pkg/layout"
	"github.com/ashduino101/polyparser/pkg/sanity"
)

// appName is the application name used for directories and display.
const appName = "polyparser"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogError = log.ErrorLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	sanityConfig string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose, silent bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Polyparser converts Poly Bridge 2 level files to and from JSON",
		Long:         `Polyparser decodes the game's .layout and .slot binary formats into editable JSON, re-encodes edited layouts, and renders bridge diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			switch {
			case silent:
				c.SetLogLevel(LogError)
			case verbose:
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVarP(&silent, "silent", "s", false, "log errors only")
	root.PersistentFlags().StringVar(&c.sanityConfig, "sanity-config", "", "path to a sanity-check config file (TOML)")

	root.AddCommand(c.convertCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// decodeOptions builds the decode options shared by all commands: the
// context logger plus a fresh sanity guard. Guard state is per invocation,
// never shared between files.
func (c *CLI) decodeOptions(logger *log.Logger) (layout.Options, error) {
	cfg := sanity.DefaultConfig()
	path := c.sanityConfig
	if path == "" {
		if p, err := configPath(); err == nil {
			if _, statErr := os.Stat(p); statErr == nil {
				path = p
			}
		}
	}
	if path != "" {
		loaded, err := sanity.LoadConfig(path)
		if err != nil {
			return layout.Options{}, err
		}
		cfg = loaded
		logger.Debugf("sanity config loaded from %s", path)
	}
	return layout.Options{
		Logger: logger,
		Guard:  sanity.NewGuard(cfg, logger),
	}, nil
}

// configPath returns the default config file location using the XDG
// standard (~/.config/polyparser/sanity.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "sanity.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "sanity.toml"), nil
}
