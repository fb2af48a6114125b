package riff

// ContainerID is the tag every RIFF root chunk carries.
const ContainerID = "RIFF"

// Container is the root of a RIFF file: a list chunk constrained to the
// id "RIFF". The container exclusively owns the whole chunk tree.
type Container struct {
	ListChunk
}

// ParseContainer parses buf as a complete RIFF file. The root tag must be
// "RIFF" and the declared length must end exactly at the end of buf; the
// sub-chunk sequence is typed through factory.
func ParseContainer(buf []byte, factory ChunkFactory) (*Container, error) {
	id, size, payload, err := ParseHeader(buf)
	if err != nil {
		return nil, err
	}
	if headerSize+int(size) != len(buf) {
		return nil, &TrailingDataError{What: "chunk " + id, Declared: headerSize + int(size), Actual: len(buf)}
	}
	if id != ContainerID {
		return nil, &NotRIFFError{ID: id}
	}
	l, err := parseListBody(id, payload, factory)
	if err != nil {
		return nil, err
	}
	return &Container{ListChunk: *l}, nil
}

// NewContainer builds a container directly from already-constructed
// chunks, without going through the parse path. The size bookkeeping is
// established by the same SetChunk path later mutations use.
func NewContainer(formType string, chunks ...Chunk) (*Container, error) {
	if err := ValidateID(formType); err != nil {
		return nil, err
	}
	c := &Container{ListChunk: ListChunk{
		id:       ContainerID,
		size:     IDSize,
		formType: formType,
		children: make(map[string]Chunk),
	}}
	for _, ch := range chunks {
		c.SetChunk(ch)
	}
	return c, nil
}
