package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/towelWet/TowelHost/internal/color"
	hostplugin "github.com/towelWet/TowelHost/internal/plugin"
	"github.com/towelWet/TowelHost/internal/report"
	"github.com/towelWet/TowelHost/internal/soformat"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [name]",
	Short: "Show a plugin bundle and what it declares",
	Long: `Resolve a plugin bundle the same way loading does and print its size,
its contents and the plugin descriptors found in it. Nothing is instantiated.

The name defaults to the application name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	name := env.pluginName()
	if len(args) > 0 {
		name = args[0]
	}

	loader := hostplugin.NewLoader(env.newFormat(), env.generator(), env.trial(), env.log)
	defer func() { _ = loader.Close() }()

	bundle, descs, err := loader.Inspect(name)
	if bundle == nil {
		return err
	}

	summary := report.BundleSummary{Bundle: bundle}

	summary.Size, summary.Files, _ = bundle.DiskUsage()

	if info, statErr := os.Stat(bundle.Path); statErr == nil {
		summary.Modified = info.ModTime()
	}

	theme := color.NewTheme(color.Profile(env.cfg.GetHost().NoColor) && color.IsTerminal(os.Stdout))
	out := cmd.OutOrStdout()

	fmt.Fprint(out, report.RenderBundle(summary, theme, time.Now()))

	if err != nil {
		return errors.Wrapf(err, "failed to read %s", soformat.ManifestFile)
	}

	fmt.Fprintln(out)

	if len(descs) == 0 {
		fmt.Fprintf(out, "No plugins declared. Loading will try %s as an effect, then as an instrument.\n", bundle.Name)

		return nil
	}

	fmt.Fprintf(out, "Declared plugins (%d):\n", len(descs))
	fmt.Fprintln(out, report.RenderDescriptors(descs, soformat.Name, theme))

	return nil
}
