// Package glimpse provides the command-line interface for the glimpse tool.
// It configures subcommands (export, scan, list, init-config, version),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/glimpse/glimpse/cmd/glimpse"
//	func main() { glimpse.Execute() }
package glimpse
