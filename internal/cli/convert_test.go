package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ashduino101/polyparser/pkg/errors"
	"github.com/ashduino101/polyparser/pkg/layout"
)

func testCLI() *CLI {
	return New(io.Discard, LogError)
}

func writeTestLayout(t *testing.T, dir string) (string, []byte) {
	t.Helper()
	l := &layout.Layout{
		Version: layout.MaxVersion,
		StubKey: "PineMountains",
		Bridge: layout.Bridge{
			Version: layout.MaxBridgeVersion,
			Joints: []layout.BridgeJoint{
				{Pos: layout.Vec3{X: 0, Y: 1}, IsAnchor: true, GUID: "j1"},
				{Pos: layout.Vec3{X: 2, Y: 1}, GUID: "j2"},
			},
			Edges: []layout.BridgeEdge{
				{Material: layout.MaterialRoad, NodeAGUID: "j1", NodeBGUID: "j2", GUID: "e1"},
			},
		},
		Budget: layout.Budget{Cash: 10000, AllowWood: true},
	}
	data := layout.Encode(l)
	path := filepath.Join(dir, "level.layout")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path, data
}

func TestConvertRoundTrip(t *testing.T) {
	c := testCLI()
	dir := t.TempDir()
	path, original := writeTestLayout(t, dir)

	if err := c.convert(c.Logger, path, ""); err != nil {
		t.Fatalf("layout to json: %v", err)
	}
	jsonPath := path + ".json"
	if _, err := os.Stat(jsonPath); err != nil {
		t.Fatalf("json output missing: %v", err)
	}

	// round trip back to binary under a different name
	out := filepath.Join(dir, "rebuilt.layout")
	if err := c.convert(c.Logger, jsonPath, out); err != nil {
		t.Fatalf("json to layout: %v", err)
	}
	rebuilt, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(original, rebuilt) {
		t.Errorf("round trip changed bytes: %d vs %d", len(original), len(rebuilt))
	}
}

func TestConvertSlotJSONRefused(t *testing.T) {
	c := testCLI()
	err := c.convert(c.Logger, "save.slot.json", "")
	if !errors.Is(err, errors.ErrCodeUnsupportedFormat) {
		t.Errorf("got %v, want UNSUPPORTED_FORMAT", err)
	}
}

func TestConvertMissingFile(t *testing.T) {
	c := testCLI()
	err := c.convert(c.Logger, filepath.Join(t.TempDir(), "absent.layout"), "")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("got %v, want FILE_NOT_FOUND", err)
	}
}

func TestRenderDOT(t *testing.T) {
	c := testCLI()
	dir := t.TempDir()
	path, _ := writeTestLayout(t, dir)

	out := filepath.Join(dir, "bridge.dot")
	if err := c.render(t.Context(), c.Logger, path, out, "dot", false); err != nil {
		t.Fatalf("render: %v", err)
	}
	dot, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(dot, []byte(`"j1" -- "j2"`)) {
		t.Errorf("DOT missing bridge edge:\n%s", dot)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	c := testCLI()
	dir := t.TempDir()
	path, _ := writeTestLayout(t, dir)

	err := c.render(t.Context(), c.Logger, path, "", "gif", false)
	if !errors.Is(err, errors.ErrCodeUnsupportedFormat) {
		t.Errorf("got %v, want UNSUPPORTED_FORMAT", err)
	}
}
