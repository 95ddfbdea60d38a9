package bin

import (
	"encoding/binary"
	"math"
)

// Writer appends little-endian scalars to an in-memory buffer.
// The zero value is ready to use.
type Writer struct {
	buf []byte
}

// Bytes returns the written buffer. The slice is owned by the Writer and is
// only valid until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int64 {
	return int64(len(w.buf))
}

// Uint8 writes one byte.
func (w *Writer) Uint8(v uint8) {
	w.buf = append(w.buf, v)
}

// Bool writes one byte, 1 for true and 0 for false.
func (w *Writer) Bool(v bool) {
	if v {
		w.Uint8(1)
	} else {
		w.Uint8(0)
	}
}

// Uint16 writes a little-endian unsigned 16-bit integer.
func (w *Writer) Uint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// Int16 writes a little-endian signed 16-bit integer.
func (w *Writer) Int16(v int16) {
	w.Uint16(uint16(v))
}

// Int32 writes a little-endian signed 32-bit integer.
func (w *Writer) Int32(v int32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(v))
}

// Int64 writes a little-endian signed 64-bit integer.
func (w *Writer) Int64(v int64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, uint64(v))
}

// Float32 writes a little-endian IEEE 754 single-precision float.
func (w *Writer) Float32(v float32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, math.Float32bits(v))
}

// Data writes raw bytes.
func (w *Writer) Data(b []byte) {
	w.buf = append(w.buf, b...)
}

// String writes a layout-format string: uint16 byte length, then raw bytes.
// Strings longer than 65535 bytes are truncated to the length prefix's range.
func (w *Writer) String(s string) {
	if len(s) > 0xFFFF {
		s = s[:0xFFFF]
	}
	w.Uint16(uint16(len(s)))
	w.buf = append(w.buf, s...)
}
