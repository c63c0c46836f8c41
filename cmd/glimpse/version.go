package glimpse

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the glimpse version",
		Run: func(_ *cobra.Command, _ []string) {
			v := version
			if info, ok := debug.ReadBuildInfo(); ok && v == "" {
				v = info.Main.Version
			}
			fmt.Printf("glimpse %s\n", v)
		},
	}
	rootCmd.AddCommand(cmd)
}
