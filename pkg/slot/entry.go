// Package slot implements the codec for the game's save-slot format.
//
// Slots use a condensed form of a generic self-describing serializer: every
// field is preceded by a one-byte discriminant selecting a named or unnamed
// variant of an entry category, and named variants are followed by the field
// name. The decoder does not interpret arbitrary trees; it walks the one
// fixed schema a slot can have, asserting each entry's (category, name)
// against the expected field before consuming its value. The bridge payload
// and the optional thumbnail ride inside primitive-array entries as raw
// bytes; the bridge bytes are handed to the layout package's bridge codec.
package slot

import (
	"unicode/utf16"

	"github.com/ashduino101/polyparser/pkg/bin"
	"github.com/ashduino101/polyparser/pkg/errors"
)

// tag is the one-byte wire discriminant in front of every entry.
type tag uint8

const (
	tagInvalid                         tag = 0x00
	tagNamedStartOfReferenceNode       tag = 0x01
	tagUnnamedStartOfReferenceNode     tag = 0x02
	tagNamedStartOfStructNode          tag = 0x03
	tagUnnamedStartOfStructNode        tag = 0x04
	tagEndOfNode                       tag = 0x05
	tagStartOfArray                    tag = 0x06
	tagEndOfArray                      tag = 0x07
	tagPrimitiveArray                  tag = 0x08
	tagNamedInternalReference          tag = 0x09
	tagUnnamedInternalReference        tag = 0x0A
	tagNamedExternalReferenceByIndex   tag = 0x0B
	tagUnnamedExternalReferenceByIndex tag = 0x0C
	tagNamedExternalReferenceByGUID    tag = 0x0D
	tagUnnamedExternalReferenceByGUID  tag = 0x0E
	tagNamedSByte                      tag = 0x0F
	tagUnnamedSByte                    tag = 0x10
	tagNamedByte                       tag = 0x11
	tagUnnamedByte                     tag = 0x12
	tagNamedShort                      tag = 0x13
	tagUnnamedShort                    tag = 0x14
	tagNamedUShort                     tag = 0x15
	tagUnnamedUShort                   tag = 0x16
	tagNamedInt                        tag = 0x17
	tagUnnamedInt                      tag = 0x18
	tagNamedUInt                       tag = 0x19
	tagUnnamedUInt                     tag = 0x1A
	tagNamedLong                       tag = 0x1B
	tagUnnamedLong                     tag = 0x1C
	tagNamedULong                      tag = 0x1D
	tagUnnamedULong                    tag = 0x1E
	tagNamedFloat                      tag = 0x1F
	tagUnnamedFloat                    tag = 0x20
	tagNamedDouble                     tag = 0x21
	tagUnnamedDouble                   tag = 0x22
	tagNamedDecimal                    tag = 0x23
	tagUnnamedDecimal                  tag = 0x24
	tagNamedChar                       tag = 0x25
	tagUnnamedChar                     tag = 0x26
	tagNamedString                     tag = 0x27
	tagUnnamedString                   tag = 0x28
	tagNamedGUID                       tag = 0x29
	tagUnnamedGUID                     tag = 0x2A
	tagNamedBoolean                    tag = 0x2B
	tagUnnamedBoolean                  tag = 0x2C
	tagNamedNull                       tag = 0x2D
	tagUnnamedNull                     tag = 0x2E
	tagTypeName                        tag = 0x2F
	tagTypeID                          tag = 0x30
	tagEndOfStream                     tag = 0x31
	tagNamedExternalReferenceByString  tag = 0x32
	tagUnnamedExternalReferenceByString tag = 0x33
)

// Kind is the category an entry collapses to once the named/unnamed and
// width distinctions are folded away. All integer widths read the same way,
// so they share one kind.
type Kind int

// Entry kinds.
const (
	KindInvalid Kind = iota
	KindString
	KindGUID
	KindInteger
	KindFloat
	KindBoolean
	KindNull
	KindStartOfNode
	KindEndOfNode
	KindInternalReference
	KindExternalReferenceByIndex
	KindExternalReferenceByGUID
	KindStartOfArray
	KindEndOfArray
	KindPrimitiveArray
	KindEndOfStream
	KindExternalReferenceByString
)

var kindNames = map[Kind]string{
	KindInvalid:                   "Invalid",
	KindString:                    "String",
	KindGUID:                      "Guid",
	KindInteger:                   "Integer",
	KindFloat:                     "FloatingPoint",
	KindBoolean:                   "Boolean",
	KindNull:                      "Null",
	KindStartOfNode:               "StartOfNode",
	KindEndOfNode:                 "EndOfNode",
	KindInternalReference:         "InternalReference",
	KindExternalReferenceByIndex:  "ExternalReferenceByIndex",
	KindExternalReferenceByGUID:   "ExternalReferenceByGuid",
	KindStartOfArray:              "StartOfArray",
	KindEndOfArray:                "EndOfArray",
	KindPrimitiveArray:            "PrimitiveArray",
	KindEndOfStream:               "EndOfStream",
	KindExternalReferenceByString: "ExternalReferenceByString",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// tagKinds maps each discriminant to its kind and whether a field name
// string follows the discriminant on the wire.
var tagKinds = map[tag]struct {
	kind  Kind
	named bool
}{
	tagNamedStartOfReferenceNode:        {KindStartOfNode, true},
	tagUnnamedStartOfReferenceNode:      {KindStartOfNode, false},
	tagNamedStartOfStructNode:           {KindStartOfNode, true},
	tagUnnamedStartOfStructNode:         {KindStartOfNode, false},
	tagEndOfNode:                        {KindEndOfNode, false},
	tagStartOfArray:                     {KindStartOfArray, false},
	tagEndOfArray:                       {KindEndOfArray, false},
	tagPrimitiveArray:                   {KindPrimitiveArray, false},
	tagNamedInternalReference:           {KindInternalReference, true},
	tagUnnamedInternalReference:         {KindInternalReference, false},
	tagNamedExternalReferenceByIndex:    {KindExternalReferenceByIndex, true},
	tagUnnamedExternalReferenceByIndex:  {KindExternalReferenceByIndex, false},
	tagNamedExternalReferenceByGUID:     {KindExternalReferenceByGUID, true},
	tagUnnamedExternalReferenceByGUID:   {KindExternalReferenceByGUID, false},
	tagNamedSByte:                       {KindInteger, true},
	tagUnnamedSByte:                     {KindInteger, false},
	tagNamedByte:                        {KindInteger, true},
	tagUnnamedByte:                      {KindInteger, false},
	tagNamedShort:                       {KindInteger, true},
	tagUnnamedShort:                     {KindInteger, false},
	tagNamedUShort:                      {KindInteger, true},
	tagUnnamedUShort:                    {KindInteger, false},
	tagNamedInt:                         {KindInteger, true},
	tagUnnamedInt:                       {KindInteger, false},
	tagNamedUInt:                        {KindInteger, true},
	tagUnnamedUInt:                      {KindInteger, false},
	tagNamedLong:                        {KindInteger, true},
	tagUnnamedLong:                      {KindInteger, false},
	tagNamedULong:                       {KindInteger, true},
	tagUnnamedULong:                     {KindInteger, false},
	tagNamedFloat:                       {KindFloat, true},
	tagUnnamedFloat:                     {KindFloat, false},
	tagNamedDouble:                      {KindFloat, true},
	tagUnnamedDouble:                    {KindFloat, false},
	tagNamedDecimal:                     {KindFloat, true},
	tagUnnamedDecimal:                   {KindFloat, false},
	tagNamedChar:                        {KindString, true},
	tagUnnamedChar:                      {KindString, false},
	tagNamedString:                      {KindString, true},
	tagUnnamedString:                    {KindString, false},
	tagNamedGUID:                        {KindGUID, true},
	tagUnnamedGUID:                      {KindGUID, false},
	tagNamedBoolean:                     {KindBoolean, true},
	tagUnnamedBoolean:                   {KindBoolean, false},
	tagNamedNull:                        {KindNull, true},
	tagUnnamedNull:                      {KindNull, false},
	tagEndOfStream:                      {KindEndOfStream, false},
	tagNamedExternalReferenceByString:   {KindExternalReferenceByString, true},
	tagUnnamedExternalReferenceByString: {KindExternalReferenceByString, false},
}

// Entry is one protocol unit: a category plus the field name, if the wire
// variant carried one.
type Entry struct {
	Kind Kind
	Name string
}

// Cursor walks a slot stream one entry at a time. Peek consumes the entry's
// discriminant and name but not its value; the caller is expected to assert
// the entry against the schema and then consume the value it implies.
type Cursor struct {
	r *bin.Reader
}

// NewCursor returns a Cursor over data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{r: bin.NewReader(data)}
}

// Err returns the first error latched on the underlying reader.
func (c *Cursor) Err() error {
	return c.r.Err()
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int64 {
	return c.r.Pos()
}

// Peek reads the next entry's discriminant (and name, for named variants).
// At end of input it returns an EndOfStream entry. TypeName and TypeID are
// not entries and may not be peeked; an unknown discriminant is fatal.
func (c *Cursor) Peek() Entry {
	if c.r.Err() != nil {
		return Entry{Kind: KindInvalid}
	}
	if c.r.AtEnd() {
		return Entry{Kind: KindEndOfStream}
	}
	pos := c.r.Pos()
	t := tag(c.r.Uint8())
	switch t {
	case tagTypeName, tagTypeID:
		c.r.SetErr(errors.At(errors.ErrCodeInvalidEntry, pos, "type entry 0x%02x cannot be peeked", uint8(t)))
		return Entry{Kind: KindInvalid}
	}
	tk, ok := tagKinds[t]
	if !ok {
		c.r.SetErr(errors.At(errors.ErrCodeInvalidEntry, pos, "unknown entry discriminant 0x%02x", uint8(t)))
		return Entry{Kind: KindInvalid}
	}
	e := Entry{Kind: tk.kind}
	if tk.named {
		e.Name = c.ReadString()
	}
	return e
}

// Expect peeks the next entry and asserts it matches the given kind and
// name. A mismatch is a schema assertion failure and fatal.
func (c *Cursor) Expect(kind Kind, name string) error {
	pos := c.r.Pos()
	e := c.Peek()
	if err := c.r.Err(); err != nil {
		return err
	}
	if e.Kind != kind || e.Name != name {
		err := errors.At(errors.ErrCodeSchemaMismatch, pos,
			"expected %s %q, got %s %q", kind, name, e.Kind, e.Name)
		c.r.SetErr(err)
		return err
	}
	return nil
}

// typeDescriptor consumes the type entry that follows a node start: either a
// TypeName (binding id, then a "TypeName, AssemblyName" string) or a TypeID
// back-reference to a previously bound type, trusted without re-validation.
func (c *Cursor) typeDescriptor() {
	if c.r.Err() != nil || c.r.AtEnd() {
		return
	}
	pos := c.r.Pos()
	switch t := tag(c.r.Uint8()); t {
	case tagTypeName:
		c.r.Int32()
		c.ReadString()
	case tagTypeID:
		c.r.Int32()
	default:
		c.r.SetErr(errors.At(errors.ErrCodeInvalidEntry, pos, "unknown type entry flag 0x%02x", uint8(t)))
	}
}

// EnterNode peeks the next entry and, if it starts a node, consumes the type
// descriptor and the 32-bit node id. It returns the node id, or -1 if the
// next entry was not a node start.
func (c *Cursor) EnterNode() int32 {
	e := c.Peek()
	if c.r.Err() != nil || e.Kind != KindStartOfNode {
		return -1
	}
	c.typeDescriptor()
	return c.r.Int32()
}

// Int32 reads a raw little-endian 32-bit value.
func (c *Cursor) Int32() int32 {
	return c.r.Int32()
}

// Int64 reads a raw little-endian 64-bit value.
func (c *Cursor) Int64() int64 {
	return c.r.Int64()
}

// Bool reads one byte; only 1 is true.
func (c *Cursor) Bool() bool {
	return c.r.Uint8() == 1
}

// PrimitiveArray reads a primitive array body: a 32-bit element count, a
// 32-bit element size, and count*size raw payload bytes. The caller must
// already have consumed the PrimitiveArray entry.
func (c *Cursor) PrimitiveArray() []byte {
	count := c.r.Int32()
	size := c.r.Int32()
	if c.r.Err() != nil {
		return nil
	}
	n := int64(count) * int64(size)
	if n < 0 {
		c.r.SetErr(errors.At(errors.ErrCodeInvalidLength, c.r.Pos(),
			"primitive array of %d elements of size %d", count, size))
		return nil
	}
	return c.r.Bytes(int(n))
}

// ReadString reads a slot-format string: a one-byte encoding discriminant,
// 0 for UTF-8 with a 32-bit byte count or 1 for UTF-16 with a 32-bit
// code-unit count. Any other discriminant, or end of input, yields "".
func (c *Cursor) ReadString() string {
	if c.r.Err() != nil || c.r.AtEnd() {
		return ""
	}
	switch c.r.Uint8() {
	case 0:
		n := int(c.r.Int32())
		if c.r.Err() != nil {
			return ""
		}
		b := c.r.Bytes(n)
		if b == nil {
			return ""
		}
		return string(b)
	case 1:
		n := int(c.r.Int32())
		if c.r.Err() != nil {
			return ""
		}
		b := c.r.Bytes(2 * n)
		if b == nil {
			return ""
		}
		units := make([]uint16, n)
		for i := range units {
			units[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
		}
		return string(utf16.Decode(units))
	default:
		return ""
	}
}
