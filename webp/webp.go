package webp

import (
	"fmt"

	"github.com/simonhull/riffmeta/riff"
)

// NotWebPError is returned when a RIFF file is not a WebP image: wrong
// form type, or the image chunk is not the first sub-chunk.
type NotWebPError struct {
	Reason string
}

func (e *NotWebPError) Error() string {
	return fmt.Sprintf("not a WebP image: %s", e.Reason)
}

// Image is a parsed WebP container. It owns the whole chunk tree; the
// embedded container exposes the generic chunk operations (Chunk, Tags,
// SetChunk, DeleteChunk, Dump).
type Image struct {
	*riff.Container
}

// Parse decomposes buf into a WebP chunk tree. Beyond the RIFF structural
// checks, the form type must be "WEBP" and the first sub-chunk must be
// "VP8 " - position matters, decoders expect the image chunk first.
func Parse(buf []byte) (*Image, error) {
	c, err := riff.ParseContainer(buf, newChunk)
	if err != nil {
		return nil, err
	}
	return newImage(c)
}

// FromImage synthesizes a minimal valid container around opaque image
// bytes: a RIFF root of form "WEBP" holding a single "VP8 " chunk. This is
// direct construction, not a parse.
func FromImage(img []byte) (*Image, error) {
	vp8, err := riff.FromBinary(TagVP8, img)
	if err != nil {
		return nil, err
	}
	c, err := riff.NewContainer(FormType, vp8)
	if err != nil {
		return nil, err
	}
	return &Image{Container: c}, nil
}

func newImage(c *riff.Container) (*Image, error) {
	if c.FormType() != FormType {
		return nil, &NotWebPError{Reason: fmt.Sprintf("form type %q, want %q", c.FormType(), FormType)}
	}
	tags := c.Tags()
	if len(tags) == 0 || tags[0] != TagVP8 {
		return nil, &NotWebPError{Reason: fmt.Sprintf("first chunk must be %q", TagVP8)}
	}
	return &Image{Container: c}, nil
}

// VP8 returns the opaque image bytes, or nil if the chunk is absent.
// The returned slice must not be modified.
func (img *Image) VP8() []byte {
	body, ok := img.ChunkBody(TagVP8)
	if !ok {
		return nil
	}
	return body
}

// Comment returns the ICMT metadata string.
func (img *Image) Comment() (string, bool) { return img.text(TagComment) }

// Copyright returns the ICOP metadata string.
func (img *Image) Copyright() (string, bool) { return img.text(TagCopyright) }

// Artist returns the IART metadata string.
func (img *Image) Artist() (string, bool) { return img.text(TagArtist) }

// Title returns the INAM metadata string.
func (img *Image) Title() (string, bool) { return img.text(TagTitle) }

// SetComment stores comment in the ICMT chunk, replacing any existing one.
func (img *Image) SetComment(comment string) error { return img.setText(TagComment, comment) }

// SetCopyright stores copyright in the ICOP chunk, replacing any existing one.
func (img *Image) SetCopyright(copyright string) error { return img.setText(TagCopyright, copyright) }

// SetArtist stores artist in the IART chunk, replacing any existing one.
func (img *Image) SetArtist(artist string) error { return img.setText(TagArtist, artist) }

// SetTitle stores title in the INAM chunk, replacing any existing one.
func (img *Image) SetTitle(title string) error { return img.setText(TagTitle, title) }

// ClearMetadata deletes all four metadata chunks. Clearing an already
// clean image is a no-op.
func (img *Image) ClearMetadata() {
	for _, tag := range MetadataTags {
		img.DeleteChunk(tag)
	}
}

func (img *Image) text(tag string) (string, bool) {
	c, ok := img.Chunk(tag)
	if !ok {
		return "", false
	}
	sc, ok := c.(*riff.StringChunk)
	if !ok {
		return "", false
	}
	return sc.Text(), true
}

func (img *Image) setText(tag, value string) error {
	c, err := riff.FromString(tag, value)
	if err != nil {
		return err
	}
	img.SetChunk(c)
	return nil
}
