package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ashduino101/polyparser/pkg/errors"
	"github.com/ashduino101/polyparser/pkg/layout"
	"github.com/ashduino101/polyparser/pkg/slot"
)

// infoCommand creates the info command, a quick human-readable summary of a
// level file without writing any output.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <path>",
		Short: "Print a summary of a level file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			path := args[0]
			switch {
			case strings.HasSuffix(path, ".layout"):
				l, err := c.decodeLayout(logger, path)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), layoutSummary(l))
				return nil
			case strings.HasSuffix(path, ".slot"):
				s, err := c.decodeSlot(logger, path)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), slotSummary(s))
				return nil
			default:
				return errors.New(errors.ErrCodeUnsupportedFormat, "info expects a .layout or .slot file, got %q", path)
			}
		},
	}
}

func layoutSummary(l *layout.Layout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", StyleTitle.Render("Layout"))
	writeField(&b, "version", StyleNumber.Render(fmt.Sprintf("%d", l.Version)))
	theme := layout.ThemeName(l.StubKey)
	if theme == "INVALID" {
		writeField(&b, "theme", StyleWarning.Render(fmt.Sprintf("%s (unknown)", l.StubKey)))
	} else {
		writeField(&b, "theme", StyleValue.Render(theme))
	}
	if l.IsModded {
		writeField(&b, "modded", StyleWarning.Render(fmt.Sprintf("yes (%d mods)", len(l.ModData.Mods))))
	}
	writeField(&b, "bridge", StyleValue.Render(fmt.Sprintf("v%d, %d joints, %d edges",
		l.Bridge.Version, len(l.Bridge.Joints), len(l.Bridge.Edges))))
	writeField(&b, "vehicles", StyleNumber.Render(fmt.Sprintf("%d", len(l.Vehicles)+len(l.ZAxisVehicles))))
	writeField(&b, "checkpoints", StyleNumber.Render(fmt.Sprintf("%d", len(l.Checkpoints))))
	writeField(&b, "budget", StyleNumber.Render(fmt.Sprintf("$%d", l.Budget.Cash)))
	if l.Settings.Unbreakable {
		writeField(&b, "unbreakable", StyleEnabled.Render("yes"))
	}
	if l.Workshop.Title != "" {
		writeField(&b, "workshop", StyleValue.Render(l.Workshop.Title))
	}
	return b.String()
}

func slotSummary(s *slot.SaveSlot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", StyleTitle.Render("Save Slot"))
	writeField(&b, "name", StyleValue.Render(s.DisplayName))
	writeField(&b, "slot id", StyleNumber.Render(fmt.Sprintf("%d", s.SlotID)))
	writeField(&b, "budget", StyleNumber.Render(fmt.Sprintf("$%d", s.Budget)))
	writeField(&b, "last write", StyleValue.Render(slot.FormatTicks(s.LastWriteTimeTicks)))
	writeField(&b, "bridge", StyleValue.Render(fmt.Sprintf("v%d, %d joints, %d edges",
		s.Bridge.Version, len(s.Bridge.Joints), len(s.Bridge.Edges))))
	if s.Thumbnail != nil {
		writeField(&b, "thumbnail", StyleValue.Render(fmt.Sprintf("%d bytes", len(s.Thumbnail))))
	}
	if s.UnlimitedMaterials {
		writeField(&b, "unlimited materials", StyleEnabled.Render("yes"))
	}
	if s.UnlimitedBudget {
		writeField(&b, "unlimited budget", StyleEnabled.Render("yes"))
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", StyleLabel.Render(label+":"), value)
}
