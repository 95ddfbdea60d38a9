// Package io maps decoded layouts and save slots to and from their JSON
// text form.
//
// The JSON schema mirrors the game's own serialized field names (the "m_"
// prefix convention), so files produced here interoperate with other
// community tooling that reads the same shape. Layouts round-trip: a layout
// exported with [WriteLayoutJSON] and re-imported with [ReadLayoutJSON]
// re-encodes to the same binary bytes, excluding write-only placeholders.
// Save slots export one way only; the thumbnail blob is not represented.
//
// Import tolerates // and /* */ comments in hand-edited files; they are
// stripped before parsing.
package io
