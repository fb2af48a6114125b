package riff

import "fmt"

// InvalidIDError is returned when a chunk tag is not exactly four bytes of
// [0-9A-Za-z_ ].
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid chunk id %q: must be 4 bytes of [0-9A-Za-z_ ]", e.ID)
}

// MalformedHeaderError is returned when a buffer is too short to contain a
// chunk header, or when the declared payload length exceeds the bytes
// actually available.
type MalformedHeaderError struct {
	What     string // what was being parsed
	Declared uint32 // declared payload length (0 if the header itself is truncated)
	Have     int    // bytes available
}

func (e *MalformedHeaderError) Error() string {
	if e.Declared == 0 && e.Have < headerSize+1 {
		return fmt.Sprintf("malformed header: %s: %d bytes available, need at least %d", e.What, e.Have, headerSize+1)
	}
	return fmt.Sprintf("malformed header: %s: declared payload of %d bytes exceeds %d available", e.What, e.Declared, e.Have)
}

// TrailingDataError is returned when a declared chunk length does not end
// exactly at the enclosing buffer or sub-chunk region boundary: either
// trailing bytes remain or the declared length overruns the region.
type TrailingDataError struct {
	What     string
	Declared int // bytes the declared structure occupies
	Actual   int // bytes the region actually holds
}

func (e *TrailingDataError) Error() string {
	return fmt.Sprintf("%s: declared length occupies %d bytes but region holds %d", e.What, e.Declared, e.Actual)
}

// FieldMismatchError is returned when explicit-field construction is given
// an inconsistent id/size/data combination.
type FieldMismatchError struct {
	ID      string
	Size    uint32
	DataLen int
}

func (e *FieldMismatchError) Error() string {
	return fmt.Sprintf("chunk %q: declared size %d does not match %d data bytes", e.ID, e.Size, e.DataLen)
}

// NotNulTerminatedError is returned when a string chunk payload does not
// consist of text followed by exactly one trailing NUL byte.
type NotNulTerminatedError struct {
	ID string
}

func (e *NotNulTerminatedError) Error() string {
	return fmt.Sprintf("chunk %q: payload is not a NUL-terminated string", e.ID)
}

// NotRIFFError is returned when the root chunk of a container is not
// tagged "RIFF".
type NotRIFFError struct {
	ID string
}

func (e *NotRIFFError) Error() string {
	return fmt.Sprintf("not a RIFF file: root chunk tagged %q", e.ID)
}

// UnknownChunkError is returned when a sub-chunk tag is not part of the
// concrete format's closed tag set.
type UnknownChunkError struct {
	ID string
}

func (e *UnknownChunkError) Error() string {
	return fmt.Sprintf("unknown chunk type %q", e.ID)
}
