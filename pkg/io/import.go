package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/ashduino101/polyparser/pkg/errors"
	"github.com/ashduino101/polyparser/pkg/layout"
)

// ReadLayoutJSON decodes a JSON layout from r. Comments are stripped before
// parsing, so hand-annotated files load as-is. Bridge edges without a GUID
// are assigned a fresh one, since the binary edge record requires it.
func ReadLayoutJSON(r io.Reader) (*layout.Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var doc layoutDoc
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidJSON, err, "parse layout json")
	}
	l, err := layoutFromDoc(&doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidJSON, err, "rebuild layout from json")
	}
	return l, nil
}

// ImportLayoutJSON reads the JSON file at path and returns the decoded
// layout.
func ImportLayoutJSON(path string) (*layout.Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadLayoutJSON(f)
}
