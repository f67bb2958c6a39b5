package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/towelWet/TowelHost/internal/color"
	hostplugin "github.com/towelWet/TowelHost/internal/plugin"
	"github.com/towelWet/TowelHost/internal/report"
)

var pathsCmd = &cobra.Command{
	Use:   "paths [name]",
	Short: "List where a plugin is looked for",
	Long: `List, in order, every location checked when loading a plugin, marking
the ones that exist. The first existing location is the one that loads.

The name defaults to the application name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	name := env.pluginName()
	if len(args) > 0 {
		name = args[0]
	}

	if name == "" {
		return hostplugin.ErrNameUndetermined
	}

	resolver := hostplugin.NewResolver(env.generator(), env.log)
	rows := report.Check(resolver.Candidates(name), pathExists)
	theme := color.NewTheme(color.Profile(env.cfg.GetHost().NoColor) && color.IsTerminal(os.Stdout))
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Search order for %q:\n", name)
	fmt.Fprintln(out, report.RenderCandidates(rows, theme))

	if first := report.FirstMatch(rows); first >= 0 {
		fmt.Fprintf(out, "Would load: %s\n", rows[first].Candidate.Path)
	} else {
		fmt.Fprintln(out, "No candidate exists.")
	}

	return nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
