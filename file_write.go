package riffmeta

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"path/filepath"
)

// Save writes the container back to the path it was opened from.
//
// This is an atomic operation: the serialized tree is written to a
// temporary file first, then renamed over the original path. If any step
// fails, the original file remains unchanged.
//
//	err := file.Save(
//	    riffmeta.WithBackup(".bak"),
//	    riffmeta.WithValidation(),
//	)
func (f *File) Save(opts ...SaveOption) error {
	return f.SaveAs(f.Path, opts...)
}

// SaveAs writes the container to a new location, atomically: temp file,
// fsync, rename. Any partially written data is cleaned up on failure.
func (f *File) SaveAs(outputPath string, opts ...SaveOption) error {
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	if f.Image == nil {
		return fmt.Errorf("file not open: no parsed image")
	}

	// Grab the original mod time before the output path is replaced.
	var origInfo os.FileInfo
	if options.preserveModTime {
		if info, err := os.Stat(outputPath); err == nil {
			origInfo = info
		}
	}

	// Temp file in the same directory so the final rename is atomic.
	outputDir := filepath.Dir(outputPath)
	tempFile, err := os.CreateTemp(outputDir, ".riffmeta-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()
			_ = os.Remove(tempPath)
		}
	}()

	data := f.Image.Dump()
	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if options.backupSuffix != "" {
		backupPath := outputPath + options.backupSuffix
		if _, err := os.Stat(outputPath); err == nil {
			if err := os.Rename(outputPath, backupPath); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	if err := os.Rename(tempPath, outputPath); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}

	success = true
	f.Size = int64(len(data))

	if options.preserveModTime && origInfo != nil {
		_ = os.Chtimes(outputPath, origInfo.ModTime(), origInfo.ModTime())
	}

	if options.validate {
		if err := f.validateWrittenFile(outputPath); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}

// validateWrittenFile re-opens the written file and compares it against
// the in-memory tree.
func (f *File) validateWrittenFile(path string) error {
	written, err := Open(path)
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}

	if !bytes.Equal(written.Image.VP8(), f.Image.VP8()) {
		return fmt.Errorf("image bytes mismatch after write")
	}

	got, want := written.Metadata(), f.Metadata()
	if !maps.Equal(got, want) {
		return fmt.Errorf("metadata mismatch after write: got %v, want %v", got, want)
	}

	return nil
}
