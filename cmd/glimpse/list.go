package glimpse

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glimpse/glimpse/internal/project"
)

var flagListExt []string

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered project structure",
	}
	modulesCmd := &cobra.Command{
		Use:   "modules",
		Short: "List auto-discovered modules",
		RunE:  runListModules,
	}
	filesCmd := &cobra.Command{
		Use:   "files",
		Short: "List all project files grouped by directory",
		RunE:  runListFiles,
	}
	filesCmd.Flags().StringSliceVar(&flagListExt, "ext", nil, "filter by extension (e.g. --ext .yaml,.json)")

	listCmd.AddCommand(modulesCmd, filesCmd)
	rootCmd.AddCommand(listCmd)
}

func runListModules(_ *cobra.Command, _ []string) error {
	a := loadApp(true, 0)
	sources := project.SourceDirs(a.root, a.settings)
	core := project.CoreFiles(a.root, a.settings)
	modules := project.Modules(a.root, a.settings)

	fmt.Printf("Project : %s\n", a.projectName)
	fmt.Printf("Sources : %s\n", orNone(strings.Join(sources, ", ")))
	fmt.Printf("Core    : %s\n", orNone(strings.Join(core, ", ")))
	fmt.Printf("\nDiscovered modules (%d):\n", len(modules))
	fmt.Println(strings.Repeat("-", 50))
	for _, name := range moduleNames(modules) {
		files := modules[name]
		fmt.Printf("\n  %s  (%d %s)\n", name, len(files), plural(len(files)))
		for _, f := range files {
			fmt.Printf("    %s\n", f)
		}
	}
	return nil
}

func runListFiles(_ *cobra.Command, _ []string) error {
	a := loadApp(true, 0)
	project.WriteListing(os.Stdout, a.root, a.projectName, a.settings, normalizeExts(flagListExt))
	return nil
}

// normalizeExts accepts "yaml" as well as ".yaml".
func normalizeExts(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func plural(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}
