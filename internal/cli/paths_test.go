package cli

import (
	"testing"

	"github.com/ashduino101/polyparser/pkg/errors"
)

func TestRoutePath(t *testing.T) {
	tests := []struct {
		path string
		want direction
	}{
		{"level.layout", dirLayoutToJSON},
		{"level.layout.json", dirJSONToLayout},
		{"save.slot", dirSlotToJSON},
		{"nested/dir/level.layout", dirLayoutToJSON},
	}
	for _, tt := range tests {
		got, err := routePath(tt.path)
		if err != nil {
			t.Errorf("routePath(%q): %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("routePath(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestRoutePathUnsupported(t *testing.T) {
	for _, path := range []string{"save.slot.json", "level.txt", "level"} {
		_, err := routePath(path)
		if !errors.Is(err, errors.ErrCodeUnsupportedFormat) {
			t.Errorf("routePath(%q) = %v, want UNSUPPORTED_FORMAT", path, err)
		}
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		path string
		dir  direction
		want string
	}{
		{"level.layout", dirLayoutToJSON, "level.layout.json"},
		{"level.layout.json", dirJSONToLayout, "level.layout"},
		{"save.slot", dirSlotToJSON, "save.slot.json"},
	}
	for _, tt := range tests {
		if got := defaultOutputPath(tt.path, tt.dir); got != tt.want {
			t.Errorf("defaultOutputPath(%q, %d) = %q, want %q", tt.path, tt.dir, got, tt.want)
		}
	}
}
