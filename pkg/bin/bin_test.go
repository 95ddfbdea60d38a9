package bin

import (
	"testing"

	"github.com/ashduino101/polyparser/pkg/errors"
)

func TestRoundTripScalars(t *testing.T) {
	var w Writer
	w.Uint8(0xAB)
	w.Bool(true)
	w.Bool(false)
	w.Int16(-12345)
	w.Uint16(54321)
	w.Int32(-7)
	w.Int64(637500000000000000)
	w.Float32(1.348)
	w.String("PineMountains")
	w.String("")

	r := NewReader(w.Bytes())
	if got := r.Uint8(); got != 0xAB {
		t.Errorf("Uint8 = %#x, want 0xAB", got)
	}
	if !r.Bool() {
		t.Error("Bool = false, want true")
	}
	if r.Bool() {
		t.Error("Bool = true, want false")
	}
	if got := r.Int16(); got != -12345 {
		t.Errorf("Int16 = %d, want -12345", got)
	}
	if got := r.Uint16(); got != 54321 {
		t.Errorf("Uint16 = %d, want 54321", got)
	}
	if got := r.Int32(); got != -7 {
		t.Errorf("Int32 = %d, want -7", got)
	}
	if got := r.Int64(); got != 637500000000000000 {
		t.Errorf("Int64 = %d, want 637500000000000000", got)
	}
	if got := r.Float32(); got != 1.348 {
		t.Errorf("Float32 = %v, want 1.348", got)
	}
	if got := r.String(); got != "PineMountains" {
		t.Errorf("String = %q, want %q", got, "PineMountains")
	}
	if got := r.String(); got != "" {
		t.Errorf("String = %q, want empty", got)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Err = %v", err)
	}
	if !r.AtEnd() {
		t.Errorf("AtEnd = false at pos %d of %d", r.Pos(), r.Len())
	}
}

func TestLittleEndianLayout(t *testing.T) {
	var w Writer
	w.Int32(26)
	want := []byte{26, 0, 0, 0}
	got := w.Bytes()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestStickyError(t *testing.T) {
	r := NewReader([]byte{1, 2})
	r.Int32() // needs 4 bytes, only 2 available
	if !errors.Is(r.Err(), errors.ErrCodeTruncated) {
		t.Fatalf("Err = %v, want TRUNCATED", r.Err())
	}
	if got := errors.OffsetOf(r.Err()); got != 0 {
		t.Errorf("error offset = %d, want 0", got)
	}

	// Subsequent reads must return zero values without moving the cursor.
	if got := r.Uint8(); got != 0 {
		t.Errorf("Uint8 after error = %d, want 0", got)
	}
	if got := r.Pos(); got != 0 {
		t.Errorf("Pos after error = %d, want 0", got)
	}

	// The first error must stay latched.
	r.SetErr(errors.New(errors.ErrCodeInternal, "second"))
	if !errors.Is(r.Err(), errors.ErrCodeTruncated) {
		t.Errorf("Err = %v, want the original TRUNCATED error", r.Err())
	}
}

func TestSeekRestoresExactPosition(t *testing.T) {
	var w Writer
	w.Int32(1)
	w.Int32(2)
	r := NewReader(w.Bytes())

	r.Int32()
	mark := r.Pos()
	r.Int32()
	if !r.AtEnd() {
		t.Fatal("expected cursor at end")
	}
	r.Seek(mark)
	if r.Pos() != mark {
		t.Fatalf("Pos = %d, want %d", r.Pos(), mark)
	}
	if got := r.Int32(); got != 2 {
		t.Errorf("Int32 after seek = %d, want 2", got)
	}
}

func TestSeekOutOfRange(t *testing.T) {
	r := NewReader([]byte{0})
	r.Seek(5)
	if r.Err() == nil {
		t.Fatal("expected error for out-of-range seek")
	}
}

func TestBytesReturnsCopy(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	r := NewReader(src)
	got := r.Bytes(4)
	src[0] = 99
	if got[0] != 1 {
		t.Error("Bytes must copy out of the underlying buffer")
	}
}

func TestTruncatedString(t *testing.T) {
	var w Writer
	w.Uint16(10) // length prefix promises 10 bytes
	w.Data([]byte("abc"))
	r := NewReader(w.Bytes())
	if got := r.String(); got != "" {
		t.Errorf("String = %q, want empty on truncation", got)
	}
	if !errors.Is(r.Err(), errors.ErrCodeTruncated) {
		t.Errorf("Err = %v, want TRUNCATED", r.Err())
	}
}
