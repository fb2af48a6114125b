package riffmeta

import (
	"github.com/simonhull/riffmeta/riff"
	"github.com/simonhull/riffmeta/webp"
)

// InvalidIDError is an alias to riff.InvalidIDError.
// Re-exported so facade callers don't need to import the subpackages.
type InvalidIDError = riff.InvalidIDError

// MalformedHeaderError is an alias to riff.MalformedHeaderError.
type MalformedHeaderError = riff.MalformedHeaderError

// TrailingDataError is an alias to riff.TrailingDataError.
type TrailingDataError = riff.TrailingDataError

// FieldMismatchError is an alias to riff.FieldMismatchError.
type FieldMismatchError = riff.FieldMismatchError

// NotNulTerminatedError is an alias to riff.NotNulTerminatedError.
type NotNulTerminatedError = riff.NotNulTerminatedError

// NotRIFFError is an alias to riff.NotRIFFError.
type NotRIFFError = riff.NotRIFFError

// UnknownChunkError is an alias to riff.UnknownChunkError.
type UnknownChunkError = riff.UnknownChunkError

// NotWebPError is an alias to webp.NotWebPError.
type NotWebPError = webp.NotWebPError
