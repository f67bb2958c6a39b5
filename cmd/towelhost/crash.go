package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/spf13/cobra"

	"github.com/towelWet/TowelHost/internal/crashdump"
)

const durationDisplayUnits = 2

var (
	crashDir  string
	crashKeep int
)

var crashCmd = &cobra.Command{
	Use:   "crash",
	Short: "Manage crash dumps",
	Long: `Manage crash dumps written when towelhost panics.

Subcommands:
  list   List crash dumps
  view   View crash dump details
  clean  Remove old crash dumps`,
}

var crashListCmd = &cobra.Command{
	Use:   "list",
	Short: "List crash dumps",
	Args:  cobra.NoArgs,
	RunE:  runCrashList,
}

var crashViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View crash dump details",
	Long: `Print a crash dump as JSON, including the stack trace, the runtime,
the host state and the configuration in effect.

Examples:
  towelhost crash view crash-20260104T160432-a1b2c3d4`,
	Args: cobra.ExactArgs(1),
	RunE: runCrashView,
}

var crashCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove old crash dumps",
	Args:  cobra.NoArgs,
	RunE:  runCrashClean,
}

func init() {
	crashCmd.PersistentFlags().StringVar(&crashDir, "dir", "", "Crash dump directory (default: $XDG_STATE_HOME/towelhost/crashes)")
	crashCleanCmd.Flags().IntVar(&crashKeep, "keep", 0, "Number of newest dumps to keep")

	crashCmd.AddCommand(crashListCmd, crashViewCmd, crashCleanCmd)
	rootCmd.AddCommand(crashCmd)
}

func openCrashStore() (*crashdump.Store, error) {
	dir := crashDir
	if dir == "" {
		dir = crashdump.DefaultDir()
	}

	return crashdump.NewStore(dir, crashdump.DefaultMaxDumps)
}

func runCrashList(cmd *cobra.Command, _ []string) error {
	store, err := openCrashStore()
	if err != nil {
		return err
	}

	dumps, err := store.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(dumps) == 0 {
		fmt.Fprintln(out, "No crash dumps found.")

		return nil
	}

	now := time.Now()

	for _, d := range dumps {
		age := now.Sub(d.Timestamp).Truncate(time.Second)

		fmt.Fprintf(out, "%s  %s ago  %s\n  %s\n",
			d.ID,
			durafmt.Parse(age).LimitFirstN(durationDisplayUnits),
			humanize.Bytes(uint64(max(d.Size, 0))),
			d.PanicValue,
		)
	}

	return nil
}

func runCrashView(cmd *cobra.Command, args []string) error {
	store, err := openCrashStore()
	if err != nil {
		return err
	}

	info, err := store.Get(args[0])
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to format crash dump")
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	return nil
}

func runCrashClean(cmd *cobra.Command, _ []string) error {
	store, err := openCrashStore()
	if err != nil {
		return err
	}

	removed, err := store.Prune(crashKeep)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d crash dump(s) from %s\n", removed, store.Dir())

	return nil
}
