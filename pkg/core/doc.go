// Package core provides a small, stable facade over glimpse's internal
// scanner for external integrations. It deliberately re-exports a narrow
// API surface so third-party tools can depend on a stable import path
// without reaching into internal implementation packages.
//
// Example:
//
//	inputs := []core.Input{{Path: "app.env", Content: data, Readable: true}}
//	rep, err := core.Scan(inputs, core.Options{})
//	if err != nil { /* handle */ }
//	for _, f := range rep.Findings { fmt.Println(f.Path, f.Line, f.Category) }
package core
