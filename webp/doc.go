// Package webp reads and writes the WebP specialization of the RIFF
// container: form type "WEBP", a leading "VP8 " chunk holding the opaque
// image bytes, and up to four NUL-terminated INFO metadata chunks
// (comment, copyright, artist, title).
//
// The image payload is treated as opaque binary; no codec work is done.
// Chunks outside the fixed tag set are rejected during parsing.
package webp
