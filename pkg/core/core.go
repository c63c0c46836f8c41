package core

import (
	"github.com/glimpse/glimpse/internal/scan"
	"github.com/glimpse/glimpse/internal/signatures"
	"github.com/glimpse/glimpse/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Input = scan.Input
type Options = scan.Options
type Thresholds = scan.Thresholds
type Report = scan.Report
type Finding = types.Finding
type Severity = types.Severity

// Scan is the stable entrypoint for other programs.
func Scan(inputs []Input, opts Options) (Report, error) {
	return scan.Run(inputs, opts)
}

// Categories returns the signature catalogue's category names in match
// order. This is exposed for convenience to avoid importing internals
// directly.
func Categories() []string { return signatures.Categories() }
