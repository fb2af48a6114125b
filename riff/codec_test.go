package riff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// buildChunk encodes a chunk header followed by its payload, for
// constructing test buffers by hand.
func buildChunk(id string, payload []byte) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, uint32(len(payload)))
	buf.Write(payload)
	return buf.Bytes()
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "riff root tag", id: "RIFF"},
		{name: "tag with space", id: "VP8 "},
		{name: "tag with underscore and digit", id: "ab_9"},
		{name: "too short", id: "RIF", wantErr: true},
		{name: "too long", id: "RIFFX", wantErr: true},
		{name: "empty", id: "", wantErr: true},
		{name: "punctuation", id: "ab-c", wantErr: true},
		{name: "non-ascii byte", id: "RI\xffF", wantErr: true},
		{name: "embedded nul", id: "RI\x00F", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id)
			if tt.wantErr {
				var idErr *InvalidIDError
				if !errors.As(err, &idErr) {
					t.Fatalf("expected *InvalidIDError for %q, got %v", tt.id, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.id, err)
			}
		})
	}
}

func TestParseHeader_Success(t *testing.T) {
	data := buildChunk("ICMT", []byte("hello\x00"))

	id, size, payload, err := ParseHeader(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if id != "ICMT" {
		t.Errorf("expected id ICMT, got %q", id)
	}
	if size != 6 {
		t.Errorf("expected size 6, got %d", size)
	}
	if !bytes.Equal(payload, []byte("hello\x00")) {
		t.Errorf("unexpected payload %q", payload)
	}
}

func TestParseHeader_TooShort(t *testing.T) {
	// A header plus at least one payload byte requires 9 bytes.
	for n := 0; n <= 8; n++ {
		buf := make([]byte, n)
		_, _, _, err := ParseHeader(buf)
		var hdrErr *MalformedHeaderError
		if !errors.As(err, &hdrErr) {
			t.Fatalf("len %d: expected *MalformedHeaderError, got %v", n, err)
		}
	}
}

func TestParseHeader_DeclaredLengthExceedsBuffer(t *testing.T) {
	buf := &bytes.Buffer{}
	buf.WriteString("VP8 ")
	binary.Write(buf, binary.LittleEndian, uint32(10))
	buf.Write([]byte{1, 2, 3, 4}) // only 4 of the declared 10 bytes

	_, _, _, err := ParseHeader(buf.Bytes())
	var hdrErr *MalformedHeaderError
	if !errors.As(err, &hdrErr) {
		t.Fatalf("expected *MalformedHeaderError, got %v", err)
	}
	if hdrErr.Declared != 10 {
		t.Errorf("expected declared 10, got %d", hdrErr.Declared)
	}
}

func TestEncodeChunk(t *testing.T) {
	got := EncodeChunk("VP8 ", 3, []byte("abc"))
	want := buildChunk("VP8 ", []byte("abc"))
	if !bytes.Equal(got, want) {
		t.Errorf("encoded %x, want %x", got, want)
	}
}

func TestEncodeChunk_RoundTrip(t *testing.T) {
	enc := EncodeChunk("IART", 4, []byte("me\x00\x00"))

	id, size, payload, err := ParseHeader(enc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "IART" || size != 4 || !bytes.Equal(payload, []byte("me\x00\x00")) {
		t.Errorf("round trip mismatch: id=%q size=%d payload=%q", id, size, payload)
	}
}
