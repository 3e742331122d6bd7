// Package diagfmt renders reconciled diagnostics and token streams for the
// command line.
package diagfmt

import "riddl/internal/reconcile"

// FileReport is the outcome of validating one file.
type FileReport struct {
	Path    string
	Text    string
	Records []reconcile.Record
	// Err is set when the file could not be read.
	Err error
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// Context prints the offending source line with a caret underline.
	Context bool
	// Max limits the records printed per file, 0 means no limit.
	Max int
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	Max int // обрезка вывода на файл
}
