package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/glimpse/glimpse/internal/scan"
	"github.com/glimpse/glimpse/internal/types"
	"github.com/olekukonko/tablewriter"
)

// PrintOptions controls the findings table rendering.
type PrintOptions struct {
	NoColor bool
}

var (
	highColor = color.New(color.FgRed)
	medColor  = color.New(color.FgYellow)
	lowColor  = color.New(color.FgCyan)
)

func severityCell(s types.Severity, noColor bool) string {
	if noColor {
		return string(s)
	}
	switch s {
	case types.SevHigh:
		return highColor.Sprint(string(s))
	case types.SevMed:
		return medColor.Sprint(string(s))
	default:
		return lowColor.Sprint(string(s))
	}
}

// PrintTable renders findings as a bordered table followed by a summary
// footer. Findings are printed in report order.
func PrintTable(w io.Writer, rep scan.Report, opts PrintOptions) {
	if len(rep.Findings) == 0 {
		fmt.Fprintln(w, "No secrets found")
	} else {
		table := tablewriter.NewWriter(w)
		table.Header("Severity", "Category", "Location", "Excerpt")
		for _, f := range rep.Findings {
			loc := f.Path
			if f.Line > 0 {
				loc = fmt.Sprintf("%s:%d", f.Path, f.Line)
			}
			table.Append([]string{
				severityCell(f.Severity, opts.NoColor),
				f.Category,
				loc,
				f.Excerpt,
			})
		}
		table.Render()
	}

	fmt.Fprintf(w, "\nFindings: %d across %d file(s), %d file(s) scanned\n",
		len(rep.Findings), rep.FilesWithFindings, rep.FilesScanned)
	for _, s := range rep.Skipped {
		fmt.Fprintf(w, "Skipped: %s (%s)\n", s.Path, s.Reason)
	}
}
