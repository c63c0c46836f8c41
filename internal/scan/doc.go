// Package scan contains the core detection engine. It consumes an ordered
// set of (path, content) inputs, applies the signature catalogue line by
// line with an entropy-based fallback, flags suspicious filenames, and
// aggregates everything into a deterministic Report. The engine performs
// no file I/O and never terminates the process.
package scan
