package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ashduino101/polyparser/pkg/errors"
	pio "github.com/ashduino101/polyparser/pkg/io"
	"github.com/ashduino101/polyparser/pkg/layout"
	"github.com/ashduino101/polyparser/pkg/slot"
)

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert <path>",
		Short: "Convert a level file between binary and JSON",
		Long: `Convert a Poly Bridge 2 level file. The direction is chosen from the
input suffix: .layout becomes .layout.json, .layout.json is re-encoded to
.layout at the current format version, and .slot becomes .slot.json.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.convert(loggerFromContext(cmd.Context()), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (defaults to the input path with the extension swapped)")
	return cmd
}

func (c *CLI) convert(logger *log.Logger, path, output string) error {
	dir, err := routePath(path)
	if err != nil {
		return err
	}
	if output == "" {
		output = defaultOutputPath(path, dir)
	}

	p := newProgress(logger)
	switch dir {
	case dirLayoutToJSON:
		l, err := c.decodeLayout(logger, path)
		if err != nil {
			return err
		}
		if err := pio.ExportLayoutJSON(l, output); err != nil {
			return err
		}
	case dirJSONToLayout:
		l, err := pio.ImportLayoutJSON(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, layout.Encode(l), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
	case dirSlotToJSON:
		s, err := c.decodeSlot(logger, path)
		if err != nil {
			return err
		}
		if err := pio.ExportSlotJSON(s, output); err != nil {
			return err
		}
	}
	p.done(fmt.Sprintf("Wrote %s", output))
	return nil
}

func (c *CLI) decodeLayout(logger *log.Logger, path string) (*layout.Layout, error) {
	data, err := readBinary(path)
	if err != nil {
		return nil, err
	}
	opts, err := c.decodeOptions(logger)
	if err != nil {
		return nil, err
	}
	return layout.Decode(data, opts)
}

func (c *CLI) decodeSlot(logger *log.Logger, path string) (*slot.SaveSlot, error) {
	data, err := readBinary(path)
	if err != nil {
		return nil, err
	}
	opts, err := c.decodeOptions(logger)
	if err != nil {
		return nil, err
	}
	return slot.Decode(data, opts)
}

func readBinary(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
