package webp

// Metadata returns every present non-image tag mapped to its decoded
// string value. The image bytes are never included. Mutating the returned
// map does not affect the image.
func (img *Image) Metadata() map[string]string {
	out := make(map[string]string, len(MetadataTags))
	for _, tag := range MetadataTags {
		if v, ok := img.text(tag); ok {
			out[tag] = v
		}
	}
	return out
}
