package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version and commit are set via -ldflags at build time. A go-install
// build carries no ldflags, so resolveVersion falls back to the module
// build info.
var (
	version = ""
	commit  = ""
)

func resolveVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("infinitedrill", resolveVersion())
		if commit != "" {
			fmt.Println("commit:", commit)
		}
	},
}
