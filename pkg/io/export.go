package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ashduino101/polyparser/pkg/layout"
	"github.com/ashduino101/polyparser/pkg/slot"
)

// WriteLayoutJSON encodes a layout as indented JSON and writes it to w.
// The output can be re-imported with [ReadLayoutJSON].
func WriteLayoutJSON(l *layout.Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(layoutToDoc(l))
}

// ExportLayoutJSON writes a layout as JSON to the file at path.
func ExportLayoutJSON(l *layout.Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteLayoutJSON(l, f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// WriteSlotJSON encodes a save slot as indented JSON and writes it to w.
// Slot JSON is write-only; the thumbnail blob is not represented.
func WriteSlotJSON(s *slot.SaveSlot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(slotToDoc(s))
}

// ExportSlotJSON writes a save slot as JSON to the file at path.
func ExportSlotJSON(s *slot.SaveSlot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteSlotJSON(s, f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
