// Package riffmeta reads and writes metadata in RIFF-family containers,
// currently the WebP image format.
//
// # Quick Start
//
// Reading metadata from a WebP file:
//
//	file, err := riffmeta.Open("photo.webp")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if title, ok := file.Image.Title(); ok {
//		fmt.Println("Title:", title)
//	}
//	for tag, value := range file.Metadata() {
//		fmt.Printf("%s: %s\n", tag, value)
//	}
//
// Updating metadata and writing the file back atomically:
//
//	if err := file.Image.SetArtist("Ansel"); err != nil {
//		log.Fatal(err)
//	}
//	if err := file.Save(riffmeta.WithBackup(".bak")); err != nil {
//		log.Fatal(err)
//	}
//
// # Architecture
//
// The library uses a layered architecture:
//
//	[File]            - Entry point with Open(), atomic Save()
//	  └─ [webp.Image] - WebP chunk tree with metadata accessors
//	       └─ [riff]  - Generic chunk model: parse, validate, serialize
//
// The riff package owns the container invariants: every chunk's declared
// size matches what it serializes to, at every level of the tree, after
// every mutation. The webp package constrains the tree to the WebP tag
// set. The root package is a thin file-level veneer; all parsing operates
// on in-memory buffers.
//
// # Error Handling
//
// Failures are synchronous and atomic: construction either yields a fully
// valid tree or an error, never a partial object. Errors are typed
// structs carrying the offending condition; match them with errors.As:
//
//	var terr *riffmeta.TrailingDataError
//	if errors.As(err, &terr) {
//		// declared chunk length does not match the buffer region
//	}
//
// # Concurrency
//
// Each parsed container is an independently owned tree. OpenMany parses
// files in parallel, but mutating a single tree from multiple goroutines
// requires external synchronization.
package riffmeta
