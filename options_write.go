package riffmeta

// SaveOption configures behavior when saving files.
//
//	err := file.Save(
//	    riffmeta.WithBackup(".bak"),
//	    riffmeta.WithValidation(),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving files.
type saveOptions struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	validate        bool   // Re-read after write to verify
	preserveModTime bool   // Keep original modification time
}

// defaultSaveOptions returns the default configuration for saving.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{
		backupSuffix:    "",
		validate:        false,
		preserveModTime: false,
	}
}

// WithBackup keeps the original file under the given suffix before the
// new content is renamed into place. An existing backup is overwritten.
//
//	err := file.Save(riffmeta.WithBackup(".bak"))
//	// Original preserved as photo.webp.bak
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing and compares the parsed
// tree against the in-memory one. Adds a full re-parse of overhead; use
// it where integrity matters more than speed.
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time instead
// of letting the save update it.
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}
