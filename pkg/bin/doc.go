// Package bin implements the primitive little-endian layer shared by the
// layout and save-slot codecs.
//
// A [Reader] is a forward cursor over an in-memory byte slice. Reads use a
// sticky error model: the first failure latches onto the cursor together with
// the offset at which it occurred, and every subsequent read returns a zero
// value without advancing. Callers can therefore decode a whole record and
// check [Reader.Err] once at the end.
//
// A [Writer] appends to an in-memory buffer and never fails.
//
// Strings in the layout format are encoded as a uint16 byte length followed
// by the raw bytes. The save-slot format uses a different, discriminated
// string encoding implemented in package slot on top of the raw scalars here.
package bin
