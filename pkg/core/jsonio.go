package core

import (
	"encoding/json"
	"io"
)

// MarshalReport writes the report as indented JSON, the same shape the CLI
// emits with --json.
func MarshalReport(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
