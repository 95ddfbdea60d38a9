package bin

import (
	"encoding/binary"
	"math"

	"github.com/ashduino101/polyparser/pkg/errors"
)

// Reader is a forward cursor over a byte slice with sticky error semantics.
// The zero value is not usable; construct with [NewReader].
type Reader struct {
	data []byte
	pos  int64
	err  error
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Err returns the first error encountered by the cursor, or nil.
func (r *Reader) Err() error {
	return r.err
}

// SetErr latches err onto the cursor unless an error is already set.
func (r *Reader) SetErr(err error) {
	if r.err == nil {
		r.err = err
	}
}

// Pos returns the current byte offset.
func (r *Reader) Pos() int64 {
	return r.pos
}

// Len returns the total length of the underlying data.
func (r *Reader) Len() int64 {
	return int64(len(r.data))
}

// AtEnd reports whether the cursor has consumed all input.
func (r *Reader) AtEnd() bool {
	return r.pos >= int64(len(r.data))
}

// Seek moves the cursor to the absolute offset pos. It is used only for the
// mod-data end-of-stream probe, which must restore the exact position.
func (r *Reader) Seek(pos int64) {
	if r.err != nil {
		return
	}
	if pos < 0 || pos > int64(len(r.data)) {
		r.err = errors.At(errors.ErrCodeInternal, r.pos, "seek to %d outside stream of %d bytes", pos, len(r.data))
		return
	}
	r.pos = pos
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 {
		r.err = errors.At(errors.ErrCodeInvalidLength, r.pos, "negative length %d", n)
		return nil
	}
	if r.pos+int64(n) > int64(len(r.data)) {
		r.err = errors.At(errors.ErrCodeTruncated, r.pos, "need %d bytes, %d left", n, int64(len(r.data))-r.pos)
		return nil
	}
	b := r.data[r.pos : r.pos+int64(n)]
	r.pos += int64(n)
	return b
}

// Bytes reads n raw bytes and returns a copy owned by the caller.
func (r *Reader) Bytes(n int) []byte {
	b := r.take(n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// Uint8 reads one byte.
func (r *Reader) Uint8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// Bool reads one byte and reports whether it is nonzero.
func (r *Reader) Bool() bool {
	return r.Uint8() != 0
}

// Int16 reads a little-endian signed 16-bit integer.
func (r *Reader) Int16() int16 {
	return int16(r.Uint16())
}

// Uint16 reads a little-endian unsigned 16-bit integer.
func (r *Reader) Uint16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// Int32 reads a little-endian signed 32-bit integer.
func (r *Reader) Int32() int32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b))
}

// Int64 reads a little-endian signed 64-bit integer.
func (r *Reader) Int64() int64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return int64(binary.LittleEndian.Uint64(b))
}

// Float32 reads a little-endian IEEE 754 single-precision float.
func (r *Reader) Float32() float32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// String reads a layout-format string: uint16 byte length, then raw bytes.
func (r *Reader) String() string {
	n := int(r.Uint16())
	b := r.take(n)
	if b == nil {
		return ""
	}
	return string(b)
}
