package cli

import (
	"strings"

	"github.com/ashduino101/polyparser/pkg/errors"
)

// direction is a conversion direction chosen from the input file suffix.
type direction int

const (
	dirLayoutToJSON direction = iota
	dirJSONToLayout
	dirSlotToJSON
)

// routePath picks the conversion direction for path. Longer suffixes are
// checked first so ".layout.json" is not mistaken for ".json".
func routePath(path string) (direction, error) {
	switch {
	case strings.HasSuffix(path, ".layout.json"):
		return dirJSONToLayout, nil
	case strings.HasSuffix(path, ".layout"):
		return dirLayoutToJSON, nil
	case strings.HasSuffix(path, ".slot.json"):
		return 0, errors.New(errors.ErrCodeUnsupportedFormat, "slot JSON cannot be converted back to a .slot file")
	case strings.HasSuffix(path, ".slot"):
		return dirSlotToJSON, nil
	default:
		return 0, errors.New(errors.ErrCodeUnsupportedFormat, "unrecognized file extension on %q (expected .layout, .layout.json, or .slot)", path)
	}
}

// defaultOutputPath derives the output path from the input path: JSON
// exports append ".json", layout re-encodes strip it.
func defaultOutputPath(path string, dir direction) string {
	switch dir {
	case dirJSONToLayout:
		return strings.TrimSuffix(path, ".json")
	default:
		return path + ".json"
	}
}
