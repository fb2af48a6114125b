// Package riff implements the generic RIFF chunk data model: a flat byte
// buffer is decomposed into a tree of typed chunks, validated at every
// level, and re-serialized byte-for-byte consistent with the declared
// sizes.
//
// A chunk on the wire is a 4-byte ASCII tag, a 4-byte little-endian
// unsigned length, and exactly that many payload bytes. No padding byte
// is inserted for odd lengths. A list chunk's payload is itself a 4-byte
// form-type tag followed by a sequence of sub-chunks.
//
// The package is format-agnostic: list parsing delegates sub-chunk typing
// to a ChunkFactory supplied by the concrete format (see package webp for
// the WebP factory). Construction either yields a fully validated chunk
// or fails; there is no observable partially-built state.
//
// Each parsed tree is independently owned. Mutating methods (SetChunk,
// DeleteChunk) must not be called concurrently on the same tree without
// external synchronization.
package riff
