package riffmeta

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/riffmeta/webp"
)

// File is an opened WebP file with its parsed chunk tree.
//
// The whole file is read into memory and parsed at once; there is no
// streaming. Mutations go through Image and take effect on disk only when
// Save or SaveAs is called.
type File struct {
	// Path the file was opened from.
	Path string

	// Size of the file in bytes as read.
	Size int64

	// Image is the parsed container. Metadata accessors and mutators
	// live here.
	Image *webp.Image
}

// Open reads a WebP file and parses it into a chunk tree.
//
// Options can be provided to customize behavior:
//
//	file, err := riffmeta.Open("photo.webp",
//	    riffmeta.WithMaxFileSize(64<<20),
//	)
//
// Open fails atomically: either the whole container validates, or an
// error describing the first violated invariant is returned.
func Open(path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	if options.maxFileSize > 0 && int64(len(data)) > options.maxFileSize {
		return nil, fmt.Errorf("%s: size %d exceeds limit %d", path, len(data), options.maxFileSize)
	}

	img, err := webp.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &File{
		Path:  path,
		Size:  int64(len(data)),
		Image: img,
	}, nil
}

// OpenContext opens a file with context support for cancellation.
//
// Parsing is a bounded in-memory computation, so the context is checked
// once before the read starts.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple WebP files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails to open, the first error is returned and all results discarded.
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Metadata returns every present metadata tag mapped to its decoded
// string value. Image bytes are never included.
func (f *File) Metadata() map[string]string {
	return f.Image.Metadata()
}
