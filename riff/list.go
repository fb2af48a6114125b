package riff

import (
	"bytes"
	"errors"
	"slices"
)

// ChunkFactory constructs a typed chunk from one parsed sub-chunk record.
// Concrete formats supply one to map their closed tag set onto chunk types;
// a tag outside the set fails with UnknownChunkError.
type ChunkFactory func(id string, payload []byte) (Chunk, error)

// ListChunk is a chunk whose payload is a 4-byte form-type tag followed by
// a sequence of sub-chunks. Children are keyed by tag in insertion order
// and exclusively owned by the list.
//
// Duplicate tags in the input stream are lossy: the later sub-chunk
// silently replaces the earlier one, keeping its position. This mirrors
// the wire format's established behavior.
type ListChunk struct {
	id       string
	size     uint32
	formType string
	order    []string
	children map[string]Chunk
}

// ParseListChunk parses buf as exactly one list chunk: the outer header,
// the form type, and the recursive sub-chunk sequence. The declared length
// must end exactly at the end of buf.
func ParseListChunk(buf []byte, factory ChunkFactory) (*ListChunk, error) {
	id, size, payload, err := ParseHeader(buf)
	if err != nil {
		return nil, err
	}
	if headerSize+int(size) != len(buf) {
		return nil, &TrailingDataError{What: "chunk " + id, Declared: headerSize + int(size), Actual: len(buf)}
	}
	return parseListBody(id, payload, factory)
}

// NewListChunk constructs a list chunk from explicit fields. The id must
// be a valid tag and size must equal len(data) exactly; data holds the
// form type and the encoded sub-chunk sequence.
func NewListChunk(id string, size uint32, data []byte, factory ChunkFactory) (*ListChunk, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	if int(size) != len(data) {
		return nil, &FieldMismatchError{ID: id, Size: size, DataLen: len(data)}
	}
	return parseListBody(id, data, factory)
}

// parseListBody decomposes a list payload: form type first, then repeated
// header+payload records handed to the factory, advancing 8+size bytes per
// record until the region is exhausted exactly.
func parseListBody(id string, data []byte, factory ChunkFactory) (*ListChunk, error) {
	if len(data) < IDSize {
		return nil, &MalformedHeaderError{What: "form type of " + id, Have: len(data)}
	}
	formType := string(data[:IDSize])
	if err := ValidateID(formType); err != nil {
		return nil, err
	}

	l := &ListChunk{
		id:       id,
		formType: formType,
		children: make(map[string]Chunk),
	}

	rest := data[IDSize:]
	off := 0
	for off < len(rest) {
		cid, csize, payload, err := ParseHeader(rest[off:])
		if err != nil {
			// Mid-sequence truncation is a boundary mismatch of the
			// enclosing list, not a bad header.
			need := headerSize + 1
			var mh *MalformedHeaderError
			if errors.As(err, &mh) && mh.Declared > 0 {
				need = headerSize + int(mh.Declared)
			}
			return nil, &TrailingDataError{What: "sub-chunk sequence of " + id, Declared: need, Actual: len(rest) - off}
		}
		child, err := factory(cid, payload)
		if err != nil {
			return nil, err
		}
		l.put(child)
		off += headerSize + int(csize)
	}

	// Duplicate tags may have collapsed; the size reflects the surviving
	// children, never the raw stream.
	l.size = l.encodedChildrenSize()
	return l, nil
}

// put inserts or replaces a child. An existing tag keeps its position in
// serialization order.
func (l *ListChunk) put(c Chunk) {
	if _, ok := l.children[c.ID()]; !ok {
		l.order = append(l.order, c.ID())
	}
	l.children[c.ID()] = c
}

// encodedChildrenSize is the payload length the current children serialize
// to: the form type plus each child's full encoded length.
func (l *ListChunk) encodedChildrenSize() uint32 {
	size := uint32(IDSize)
	for _, tag := range l.order {
		size += headerSize + l.children[tag].Size()
	}
	return size
}

// ID returns the chunk tag.
func (l *ListChunk) ID() string { return l.id }

// Size returns the payload length the list serializes to.
func (l *ListChunk) Size() uint32 { return l.size }

// FormType returns the 4-byte tag identifying the list's content type,
// distinct from its ID.
func (l *ListChunk) FormType() string { return l.formType }

// Chunk returns the child with the given tag.
func (l *ListChunk) Chunk(tag string) (Chunk, bool) {
	c, ok := l.children[tag]
	return c, ok
}

// ChunkBody returns the payload bytes of the child with the given tag.
// The returned slice must not be modified.
func (l *ListChunk) ChunkBody(tag string) ([]byte, bool) {
	c, ok := l.children[tag]
	if !ok {
		return nil, false
	}
	return c.Body(), true
}

// Tags returns the child tags in serialization order.
func (l *ListChunk) Tags() []string {
	return slices.Clone(l.order)
}

// Len returns the number of children.
func (l *ListChunk) Len() int { return len(l.children) }

// Body returns the serialized payload region: form type followed by each
// child's Dump in stored order.
func (l *ListChunk) Body() []byte {
	var buf bytes.Buffer
	buf.Grow(int(l.size))
	buf.WriteString(l.formType)
	for _, tag := range l.order {
		buf.Write(l.children[tag].Dump())
	}
	return buf.Bytes()
}

// Dump serializes the whole list recursively.
func (l *ListChunk) Dump() []byte {
	return EncodeChunk(l.id, l.size, l.Body())
}

// SetChunk inserts c, replacing any child sharing its tag. The list size
// is adjusted in the same operation: the replaced child's encoded length
// is subtracted and the new child's added, so the size always reflects the
// current children without a recompute pass.
func (l *ListChunk) SetChunk(c Chunk) {
	if old, ok := l.children[c.ID()]; ok {
		l.size -= headerSize + old.Size()
	}
	l.put(c)
	l.size += headerSize + c.Size()
}

// DeleteChunk removes the child with the given tag, subtracting its
// encoded length from the list size. Deleting an absent tag is a no-op.
func (l *ListChunk) DeleteChunk(tag string) {
	old, ok := l.children[tag]
	if !ok {
		return
	}
	l.size -= headerSize + old.Size()
	delete(l.children, tag)
	l.order = slices.DeleteFunc(l.order, func(t string) bool { return t == tag })
}
