package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/towelWet/TowelHost/internal/soformat"
	"github.com/towelWet/TowelHost/pkg/config"
)

// Set with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const shortCommitLength = 12

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the towelhost version, build details and the plugin format it loads.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		writeVersion(cmd.OutOrStdout())
	},
}

var versionRequested bool

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Flags().BoolVarP(&versionRequested, "version", "v", false, "Print version information")
}

// checkVersionFlag handles --version before any plugin is resolved.
func checkVersionFlag() {
	if !versionRequested {
		return
	}

	writeVersion(os.Stdout)
	os.Exit(0)
}

func writeVersion(w io.Writer) {
	shown := commit

	rev, dirty := vcsState()
	if shown == "unknown" && rev != "" {
		shown = rev[:min(shortCommitLength, len(rev))]
	}

	if dirty {
		shown += " (modified)"
	}

	fmt.Fprintf(w, "towelhost %s\n", version)
	fmt.Fprintf(w, "  commit:    %s\n", shown)
	fmt.Fprintf(w, "  built:     %s\n", date)
	fmt.Fprintf(w, "  go:        %s\n", runtime.Version())
	fmt.Fprintf(w, "  os/arch:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "  format:    %s (%s, entry point %s)\n",
		soformat.Name, config.DefaultExtension, soformat.DefaultEntryPoint)
}

func vcsState() (rev string, dirty bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	return rev, dirty
}
