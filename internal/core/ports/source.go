// internal/core/ports/source.go
package ports

import "iter"

// URLSource yields input URLs lazily. URLs can be ranged once; read errors
// surface through Err after the sequence ends.
type URLSource interface {
	// Name describes the source (file path or "stdin")
	Name() string

	// URLs returns the single-pass sequence of URLs
	URLs() iter.Seq[string]

	// Lines returns the number of lines read so far, comments and blanks included
	Lines() int

	// Err returns the first read error, if any
	Err() error

	// Close releases the underlying readers
	Close() error
}
