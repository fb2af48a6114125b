package webp

import "github.com/simonhull/riffmeta/riff"

// WebP chunk tags. The tag set is closed: anything outside it fails
// parsing with riff.UnknownChunkError.
const (
	// FormType is the RIFF form type of a WebP file.
	FormType = "WEBP"

	// TagVP8 holds the opaque image bitstream. It must be the first
	// sub-chunk of the container.
	TagVP8 = "VP8 "

	// INFO metadata tags, each a NUL-terminated string payload.
	TagComment   = "ICMT"
	TagCopyright = "ICOP"
	TagArtist    = "IART"
	TagTitle     = "INAM"
)

// MetadataTags lists the non-image tags in canonical order.
var MetadataTags = []string{TagComment, TagCopyright, TagArtist, TagTitle}

// constructors maps each known tag to its chunk constructor.
var constructors = map[string]func(id string, payload []byte) (riff.Chunk, error){
	TagVP8:       binaryChunk,
	TagComment:   stringChunk,
	TagCopyright: stringChunk,
	TagArtist:    stringChunk,
	TagTitle:     stringChunk,
}

func binaryChunk(id string, payload []byte) (riff.Chunk, error) {
	return riff.FromBinary(id, payload)
}

func stringChunk(id string, payload []byte) (riff.Chunk, error) {
	return riff.NewStringChunk(id, payload)
}

// newChunk is the riff.ChunkFactory for WebP containers.
func newChunk(id string, payload []byte) (riff.Chunk, error) {
	ctor, ok := constructors[id]
	if !ok {
		return nil, &riff.UnknownChunkError{ID: id}
	}
	return ctor(id, payload)
}
