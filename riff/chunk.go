package riff

import "bytes"

// Chunk is a validated (id, size, payload) triple.
//
// Size always matches what Body currently serializes to: constructors and
// mutating operations keep the bookkeeping consistent, so Dump output is
// byte-for-byte consistent with the declared sizes at every level.
type Chunk interface {
	// ID returns the 4-byte chunk tag.
	ID() string

	// Size returns the declared payload length in bytes.
	Size() uint32

	// Body returns the bytes that occupy the serialized payload region.
	// For a list chunk this is the form type followed by each child's
	// Dump, produced recursively. The returned slice must not be modified.
	Body() []byte

	// Dump serializes the chunk: header followed by Body.
	Dump() []byte
}

// BinaryChunk is a leaf chunk holding opaque payload bytes.
type BinaryChunk struct {
	id   string
	size uint32
	data []byte
}

// ParseBinaryChunk parses buf as exactly one chunk. The buffer must hold
// the header and the declared payload with nothing following it; a buffer
// longer than the declared chunk fails with TrailingDataError.
func ParseBinaryChunk(buf []byte) (*BinaryChunk, error) {
	id, size, payload, err := ParseHeader(buf)
	if err != nil {
		return nil, err
	}
	if headerSize+int(size) != len(buf) {
		return nil, &TrailingDataError{What: "chunk " + id, Declared: headerSize + int(size), Actual: len(buf)}
	}
	return &BinaryChunk{id: id, size: size, data: bytes.Clone(payload)}, nil
}

// NewBinaryChunk constructs a chunk from explicit fields. The id must be a
// valid tag and size must equal len(data) exactly.
func NewBinaryChunk(id string, size uint32, data []byte) (*BinaryChunk, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	if int(size) != len(data) {
		return nil, &FieldMismatchError{ID: id, Size: size, DataLen: len(data)}
	}
	return &BinaryChunk{id: id, size: size, data: bytes.Clone(data)}, nil
}

// FromBinary constructs a chunk around data, computing the size. It can
// only fail on an invalid id.
func FromBinary(id string, data []byte) (*BinaryChunk, error) {
	return NewBinaryChunk(id, uint32(len(data)), data)
}

// ID returns the chunk tag.
func (c *BinaryChunk) ID() string { return c.id }

// Size returns the payload length.
func (c *BinaryChunk) Size() uint32 { return c.size }

// Body returns the raw payload. The returned slice must not be modified.
func (c *BinaryChunk) Body() []byte { return c.data }

// Dump serializes the chunk.
func (c *BinaryChunk) Dump() []byte { return EncodeChunk(c.id, c.size, c.data) }

// StringChunk is a leaf chunk whose payload is a C-style NUL-terminated
// byte string: text followed by exactly one NUL, in the final position.
// Requiring the single trailing NUL (rather than "contains a NUL") rejects
// embedded NULs and guarantees round-trip fidelity.
type StringChunk struct {
	BinaryChunk
}

// NewStringChunk constructs a string chunk from a raw payload, which must
// end with its only NUL byte.
func NewStringChunk(id string, data []byte) (*StringChunk, error) {
	b, err := FromBinary(id, data)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || bytes.IndexByte(data, 0) != len(data)-1 {
		return nil, &NotNulTerminatedError{ID: id}
	}
	return &StringChunk{BinaryChunk: *b}, nil
}

// FromString constructs a string chunk around text, appending the
// terminating NUL. Text containing a NUL byte is rejected.
func FromString(id, text string) (*StringChunk, error) {
	data := make([]byte, 0, len(text)+1)
	data = append(data, text...)
	data = append(data, 0)
	return NewStringChunk(id, data)
}

// Text returns the payload with the trailing NUL stripped.
func (c *StringChunk) Text() string {
	return string(c.data[:len(c.data)-1])
}
