package riffmeta

// Option configures behavior when opening files.
//
// Options use the functional options pattern:
//
//	file, err := riffmeta.Open("photo.webp",
//	    riffmeta.WithMaxFileSize(64<<20),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	maxFileSize int64 // Reject files larger than this (0 = no limit)
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		maxFileSize: 0, // No limit
	}
}

// WithMaxFileSize rejects files larger than the given size in bytes.
//
// Open reads the whole file into memory before parsing; use this to guard
// against unexpectedly large inputs. The default is no limit.
//
//	file, err := riffmeta.Open("photo.webp", riffmeta.WithMaxFileSize(64<<20))
func WithMaxFileSize(bytes int64) Option {
	return func(o *openOptions) {
		o.maxFileSize = bytes
	}
}
