package glimpse

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glimpse/glimpse/internal/project"
	"github.com/glimpse/glimpse/internal/report"
	"github.com/glimpse/glimpse/internal/scan"
)

var flagScanJSON bool

func init() {
	cmd := &cobra.Command{
		Use:   "scan [files...]",
		Short: "Scan project files for secrets without exporting",
		RunE:  runScanCmd,
	}
	rootCmd.AddCommand(cmd)
	cmd.Flags().BoolVar(&flagScanJSON, "json", false, "emit the report as JSON")
}

func runScanCmd(_ *cobra.Command, args []string) error {
	a := loadApp(false, 0)

	files := args
	if len(files) == 0 {
		files = append(files, project.CoreFiles(a.root, a.settings)...)
		modules := project.Modules(a.root, a.settings)
		for _, name := range moduleNames(modules) {
			files = append(files, modules[name]...)
		}
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No files to scan.")
		return nil
	}

	rep, err := scanInputs(a, files)
	if err != nil {
		return err
	}

	if flagScanJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	report.PrintTable(os.Stdout, rep, report.PrintOptions{NoColor: flagNoColor})
	return nil
}

// scanInputs runs the scanner without printing the warning block; callers
// choose the rendering.
func scanInputs(a app, files []string) (scan.Report, error) {
	inputs := readInputs(a, files)
	return scan.Run(inputs, a.scanOpts)
}
