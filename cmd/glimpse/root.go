package glimpse

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagRoot       string
	flagNoColor    bool
	flagYes        bool
	flagSelfUpdate bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the glimpse CLI. Running it bare
// performs the default export.
var rootCmd = &cobra.Command{
	Use:           "glimpse",
	Short:         "Export project files for sharing",
	Long:          "Glimpse bundles selected project files into a single text or XML document, scanning them for leaked credentials first.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagSelfUpdate {
			return selfUpdate()
		}
		return runExport(cmd, args)
	},
}

// Execute runs the glimpse CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagRoot, "root", "r", ".", "project root directory")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "assume yes on confirmation prompts")
	rootCmd.PersistentFlags().BoolVar(&flagSelfUpdate, "self-update", false, "update glimpse to the latest release")
}
