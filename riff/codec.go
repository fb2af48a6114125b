package riff

import "encoding/binary"

const (
	// IDSize is the length of a chunk tag in bytes.
	IDSize = 4

	// headerSize is the encoded length of a chunk header: 4-byte tag plus
	// 4-byte little-endian payload length.
	headerSize = 8
)

// ValidateID checks that id is exactly four bytes, each in [0-9A-Za-z_ ].
func ValidateID(id string) error {
	if len(id) != IDSize {
		return &InvalidIDError{ID: id}
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c == '_' || c == ' ':
		default:
			return &InvalidIDError{ID: id}
		}
	}
	return nil
}

// ParseHeader reads one chunk header from the front of buf: bytes [0,4) as
// the tag, bytes [4,8) as a little-endian 32-bit payload length. It returns
// the tag, the declared length, and the payload slice [8, 8+size), which
// aliases buf.
//
// ParseHeader fails with MalformedHeaderError if buf cannot hold a header
// followed by at least one payload byte, or if the declared length exceeds
// the bytes available.
func ParseHeader(buf []byte) (id string, size uint32, payload []byte, err error) {
	if len(buf) < headerSize+1 {
		return "", 0, nil, &MalformedHeaderError{What: "chunk header", Have: len(buf)}
	}
	id = string(buf[:IDSize])
	size = binary.LittleEndian.Uint32(buf[IDSize:headerSize])
	if headerSize+uint64(size) > uint64(len(buf)) {
		return "", 0, nil, &MalformedHeaderError{What: "chunk " + id, Declared: size, Have: len(buf) - headerSize}
	}
	return id, size, buf[headerSize : headerSize+int(size)], nil
}

// EncodeChunk serializes a chunk: tag, little-endian 32-bit size, payload.
// It performs no validation; callers guarantee id/size/payload consistency.
func EncodeChunk(id string, size uint32, payload []byte) []byte {
	out := make([]byte, 0, headerSize+len(payload))
	out = append(out, id...)
	out = binary.LittleEndian.AppendUint32(out, size)
	return append(out, payload...)
}
