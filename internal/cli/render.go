package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ashduino101/polyparser/pkg/errors"
	"github.com/ashduino101/polyparser/pkg/layout"
	"github.com/ashduino101/polyparser/pkg/render"
)

// renderCommand creates the render command for drawing bridge diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "render <path>",
		Short: "Render a level's bridge as a diagram",
		Long: `Render the bridge graph of a .layout or .slot file as an SVG or PNG
diagram. Joints are drawn at their real positions; edges are colored by
material.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			return c.render(cmd.Context(), logger, args[0], output, format, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (defaults to the input path with the format appended)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, png, or dot")
	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "label joints and edges")
	return cmd
}

func (c *CLI) render(ctx context.Context, logger *log.Logger, path, output, format string, detailed bool) error {
	bridge, err := c.loadBridge(logger, path)
	if err != nil {
		return err
	}
	if output == "" {
		output = path + "." + format
	}

	p := newProgress(logger)
	dot := render.ToDOT(bridge, render.Options{Detailed: detailed})

	var data []byte
	switch strings.ToLower(format) {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = render.RenderSVG(ctx, dot)
	case "png":
		data, err = render.RenderPNG(ctx, dot)
	default:
		return errors.New(errors.ErrCodeUnsupportedFormat, "unknown render format %q (expected svg, png, or dot)", format)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	p.done(fmt.Sprintf("Rendered %s", output))
	return nil
}

// loadBridge extracts the bridge from either outer format.
func (c *CLI) loadBridge(logger *log.Logger, path string) (*layout.Bridge, error) {
	switch {
	case strings.HasSuffix(path, ".layout"):
		l, err := c.decodeLayout(logger, path)
		if err != nil {
			return nil, err
		}
		return &l.Bridge, nil
	case strings.HasSuffix(path, ".slot"):
		s, err := c.decodeSlot(logger, path)
		if err != nil {
			return nil, err
		}
		return &s.Bridge, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupportedFormat, "render expects a .layout or .slot file, got %q", path)
	}
}
