package glimpse

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glimpse/glimpse/internal/config"
	"github.com/glimpse/glimpse/internal/project"
)

func init() {
	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Generate a .glimpse.yml pre-populated with discovered structure",
		RunE:  runInitConfig,
	}
	rootCmd.AddCommand(cmd)
}

func runInitConfig(_ *cobra.Command, _ []string) error {
	a := loadApp(true, 0)
	modules := project.Modules(a.root, a.settings)

	content := config.Template(config.TemplateData{
		ProjectName: a.projectName,
		CoreFiles:   project.CoreFiles(a.root, a.settings),
		IgnoreDirs:  a.settings.IgnoreDirs,
		Extensions:  a.settings.Extensions,
		TreeDepth:   a.settings.TreeDepth,
		Modules:     modules,
	})

	path := filepath.Join(a.root, ".glimpse.yml")
	if _, err := os.Stat(path); err == nil && !flagYes {
		fmt.Fprintf(os.Stderr, "%s already exists. Overwrite? [y/N] ", path)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Printf("Generated configuration: %s\n", path)
	fmt.Printf("Discovered %d module(s): %s\n", len(modules), strings.Join(moduleNames(modules), ", "))
	return nil
}
