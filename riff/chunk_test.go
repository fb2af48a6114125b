package riff

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseBinaryChunk_Success(t *testing.T) {
	data := buildChunk("VP8 ", []byte{0x10, 0x20, 0x30})

	c, err := ParseBinaryChunk(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.ID() != "VP8 " {
		t.Errorf("expected id 'VP8 ', got %q", c.ID())
	}
	if c.Size() != 3 {
		t.Errorf("expected size 3, got %d", c.Size())
	}
	if !bytes.Equal(c.Body(), []byte{0x10, 0x20, 0x30}) {
		t.Errorf("unexpected body %x", c.Body())
	}
	if !bytes.Equal(c.Dump(), data) {
		t.Errorf("dump %x does not round-trip input %x", c.Dump(), data)
	}
}

func TestParseBinaryChunk_TrailingByte(t *testing.T) {
	data := append(buildChunk("VP8 ", []byte{1, 2, 3}), 0xFF)

	_, err := ParseBinaryChunk(data)
	var trailErr *TrailingDataError
	if !errors.As(err, &trailErr) {
		t.Fatalf("expected *TrailingDataError, got %v", err)
	}
	if trailErr.Declared != 11 || trailErr.Actual != 12 {
		t.Errorf("expected declared 11 / actual 12, got %d / %d", trailErr.Declared, trailErr.Actual)
	}
}

func TestParseBinaryChunk_Truncated(t *testing.T) {
	_, err := ParseBinaryChunk([]byte("VP8 ")) // no length, no payload
	var hdrErr *MalformedHeaderError
	if !errors.As(err, &hdrErr) {
		t.Fatalf("expected *MalformedHeaderError, got %v", err)
	}
}

func TestNewBinaryChunk_FieldMismatch(t *testing.T) {
	_, err := NewBinaryChunk("VP8 ", 5, []byte{1, 2, 3})
	var mismatchErr *FieldMismatchError
	if !errors.As(err, &mismatchErr) {
		t.Fatalf("expected *FieldMismatchError, got %v", err)
	}
	if mismatchErr.Size != 5 || mismatchErr.DataLen != 3 {
		t.Errorf("expected size 5 / data len 3, got %d / %d", mismatchErr.Size, mismatchErr.DataLen)
	}
}

func TestNewBinaryChunk_InvalidID(t *testing.T) {
	_, err := NewBinaryChunk("no", 0, nil)
	var idErr *InvalidIDError
	if !errors.As(err, &idErr) {
		t.Fatalf("expected *InvalidIDError, got %v", err)
	}
}

func TestFromBinary_ComputesSize(t *testing.T) {
	c, err := FromBinary("VP8 ", []byte{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Size() != 5 {
		t.Errorf("expected size 5, got %d", c.Size())
	}
}

func TestFromBinary_DoesNotAliasInput(t *testing.T) {
	data := []byte{1, 2, 3}
	c, err := FromBinary("VP8 ", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data[0] = 99
	if c.Body()[0] != 1 {
		t.Error("chunk body aliases the caller's buffer")
	}
}

func TestNewStringChunk(t *testing.T) {
	tests := []struct {
		name     string
		payload  []byte
		wantText string
		wantErr  bool
	}{
		{name: "terminated", payload: []byte("abc\x00"), wantText: "abc"},
		{name: "empty string", payload: []byte{0}, wantText: ""},
		{name: "no nul", payload: []byte("abc"), wantErr: true},
		{name: "nul in the middle", payload: []byte("abc\x00def"), wantErr: true},
		{name: "two trailing nuls", payload: []byte("ab\x00\x00"), wantErr: true},
		{name: "empty payload", payload: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewStringChunk("ICMT", tt.payload)
			if tt.wantErr {
				var nulErr *NotNulTerminatedError
				if !errors.As(err, &nulErr) {
					t.Fatalf("expected *NotNulTerminatedError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Text() != tt.wantText {
				t.Errorf("expected text %q, got %q", tt.wantText, c.Text())
			}
		})
	}
}

func TestFromString(t *testing.T) {
	c, err := FromString("INAM", "Hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Size() != 3 {
		t.Errorf("expected size 3 (text + NUL), got %d", c.Size())
	}
	if c.Text() != "Hi" {
		t.Errorf("expected text 'Hi', got %q", c.Text())
	}

	want := buildChunk("INAM", []byte("Hi\x00"))
	if !bytes.Equal(c.Dump(), want) {
		t.Errorf("dump %x, want %x", c.Dump(), want)
	}
}

func TestFromString_EmbeddedNul(t *testing.T) {
	_, err := FromString("INAM", "a\x00b")
	var nulErr *NotNulTerminatedError
	if !errors.As(err, &nulErr) {
		t.Fatalf("expected *NotNulTerminatedError, got %v", err)
	}
}
