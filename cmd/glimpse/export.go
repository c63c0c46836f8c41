package glimpse

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/glimpse/glimpse/internal/export"
	"github.com/glimpse/glimpse/internal/gitfiles"
	"github.com/glimpse/glimpse/internal/project"
	"github.com/glimpse/glimpse/internal/report"
	"github.com/glimpse/glimpse/internal/scan"
	"github.com/glimpse/glimpse/internal/tui"
)

var (
	flagModules   []string
	flagFiles     []string
	flagChanged   bool
	flagAll       bool
	flagFormat    string
	flagOutput    string
	flagNoTree    bool
	flagCopy      bool
	flagNoScan    bool
	flagReview    bool
	flagTreeDepth int
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export selected files as one document",
		RunE:  runExport,
	}
	rootCmd.AddCommand(cmd)
	addExportFlags(cmd)
	addExportFlags(rootCmd)
}

// addExportFlags registers the export flag set. The root command carries the
// same flags so a bare "glimpse" invocation behaves like "glimpse export".
func addExportFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&flagModules, "module", "m", nil, "export one or more modules (see 'list modules')")
	cmd.Flags().StringSliceVarP(&flagFiles, "files", "f", nil, "export specific files (additive)")
	cmd.Flags().BoolVarP(&flagChanged, "changed", "c", false, "export git-changed files only")
	cmd.Flags().BoolVarP(&flagAll, "all", "a", false, "export all discovered files")
	cmd.Flags().StringVar(&flagFormat, "format", "", "output format: txt or xml (default txt)")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().BoolVar(&flagNoTree, "no-tree", false, "omit the directory tree")
	cmd.Flags().BoolVar(&flagCopy, "copy", false, "copy the export to the clipboard")
	cmd.Flags().BoolVar(&flagNoScan, "no-scan", false, "skip secret detection")
	cmd.Flags().BoolVar(&flagReview, "review", false, "review findings interactively before exporting")
	cmd.Flags().IntVar(&flagTreeDepth, "tree-depth", 0, "override directory tree depth")
}

func runExport(cmd *cobra.Command, _ []string) error {
	a := loadApp(flagNoScan, flagTreeDepth)

	files, err := selectFiles(a)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No files to export. Use 'glimpse list modules' to see available modules, or --all to export everything.")
		return nil
	}

	if a.scanEnabled {
		rep, err := scanFiles(a, files)
		if err != nil {
			return err
		}
		if !rep.Empty() {
			proceed, err := confirmExport(rep)
			if err != nil {
				return err
			}
			if !proceed {
				return errors.New("export aborted")
			}
		}
	}

	format := flagFormat
	if format == "" {
		format = export.FormatText
		if strings.EqualFold(filepath.Ext(flagOutput), ".xml") {
			format = export.FormatXML
		}
	}
	doc, err := export.Render(format, export.Options{
		Root:        a.root,
		ProjectName: a.projectName,
		Files:       files,
		IncludeTree: !flagNoTree,
		Settings:    a.settings,
	})
	if err != nil {
		return err
	}

	if flagCopy {
		if err := clipboard.WriteAll(doc); err != nil {
			fmt.Fprintln(os.Stderr, "clipboard unavailable:", err)
		} else {
			fmt.Fprintln(os.Stderr, "Export copied to clipboard.")
		}
	}
	if flagOutput != "" {
		if err := os.WriteFile(flagOutput, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Printf("Exported %d file(s) to %s\n", len(files), flagOutput)
		return nil
	}
	fmt.Print(doc)
	return nil
}

// selectFiles resolves the export file list: changed files, or core files
// plus the requested (or default) modules. --files is always additive.
// Order is preserved and duplicates dropped.
func selectFiles(a app) ([]string, error) {
	var files []string

	if flagChanged {
		changed, err := gitfiles.Changed(a.root, a.settings.Extensions)
		if err != nil {
			return nil, err
		}
		if len(changed) == 0 {
			fmt.Fprintln(os.Stderr, "No changed files detected.")
		}
		files = append(files, changed...)
	} else {
		files = append(files, project.CoreFiles(a.root, a.settings)...)
		modules := project.Modules(a.root, a.settings)

		switch {
		case len(flagModules) > 0:
			for _, mod := range flagModules {
				mfiles, ok := modules[mod]
				if !ok {
					return nil, fmt.Errorf("module %q not found (available: %s)", mod, strings.Join(moduleNames(modules), ", "))
				}
				files = append(files, mfiles...)
			}
		case flagAll:
			for _, name := range moduleNames(modules) {
				files = append(files, modules[name]...)
			}
		case a.settings.DefaultModule != "":
			if mfiles, ok := modules[a.settings.DefaultModule]; ok {
				files = append(files, mfiles...)
			}
		}
	}

	files = append(files, flagFiles...)

	seen := make(map[string]bool, len(files))
	unique := files[:0]
	for _, f := range files {
		if !seen[f] {
			seen[f] = true
			unique = append(unique, f)
		}
	}
	return unique, nil
}

func moduleNames(modules map[string][]string) []string {
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// scanFiles reads the selected files and runs the scanner over them. The
// warning block goes to stderr so piped stdout stays clean.
func scanFiles(a app, files []string) (scan.Report, error) {
	rep, err := scan.Run(readInputs(a, files), a.scanOpts)
	if err != nil {
		return rep, err
	}
	if !rep.Empty() {
		report.WriteWarning(os.Stderr, rep)
	}
	return rep, nil
}

func readInputs(a app, files []string) []scan.Input {
	inputs := make([]scan.Input, 0, len(files))
	for _, rel := range files {
		p := rel
		if !filepath.IsAbs(p) {
			p = filepath.Join(a.root, filepath.FromSlash(rel))
		}
		content, err := os.ReadFile(p)
		inputs = append(inputs, scan.Input{
			Path:     rel,
			Content:  content,
			Readable: err == nil,
		})
	}
	return inputs
}

// confirmExport decides whether to continue after findings were reported.
// --review opens the interactive screen; otherwise a terminal gets a y/N
// prompt and non-interactive runs proceed with the warning already printed.
func confirmExport(rep scan.Report) (bool, error) {
	if flagReview {
		return tui.Run(rep.Findings)
	}
	if flagYes {
		return true, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return true, nil
	}
	fmt.Fprint(os.Stderr, "Secrets detected. Continue with export? [y/N] ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
