// Package main provides the CLI entry point for towelhost.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/towelWet/TowelHost/internal/audio"
	"github.com/towelWet/TowelHost/internal/color"
	"github.com/towelWet/TowelHost/internal/crashdump"
	"github.com/towelWet/TowelHost/internal/host"
	hostplugin "github.com/towelWet/TowelHost/internal/plugin"
	"github.com/towelWet/TowelHost/internal/tui"
	"github.com/towelWet/TowelHost/pkg/config"
)

// ExitCodeCrash indicates an unexpected panic.
const ExitCodeCrash = 3

var (
	pluginName  string
	extension   string
	appDir      string
	userDir     string
	systemDir   string
	sampleRate  float64
	blockSize   int
	logFile     string
	debugMode   bool
	traceMode   bool
	noColorFlag bool
	exitAfter   time.Duration

	// crashHost and crashConfig are read by the panic handler.
	crashHost   *host.Host
	crashConfig *config.Config
)

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			handlePanic(r)

			exitCode = ExitCodeCrash
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", hostplugin.FormatError(err))

		return 1
	}

	return 0
}

var rootCmd = &cobra.Command{
	Use:   "towelhost",
	Short: "Rename-to-load audio plugin host",
	Long: `Rename-to-load audio plugin host - loads the plugin bundle whose name
matches the application's own name and runs it against the audio device.

Rename the application (e.g. Reverb.app) to load Reverb.component.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		checkVersionFlag()
	},
	RunE:              run,
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&pluginName, "plugin", "", "Plugin to load instead of the one named after the application")
	flags.StringVar(&extension, "extension", "", "Bundle extension (default: .component)")
	flags.StringVar(&appDir, "app-dir", "", "Directory searched first (default: next to the application)")
	flags.StringVar(&userDir, "user-dir", "", "Per-user plugin directory")
	flags.StringVar(&systemDir, "system-dir", "", "System-wide plugin directory")
	flags.StringVar(&logFile, "log-file", "", "Log file (default: $XDG_STATE_HOME/towelhost/towelhost.log)")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug logging")
	flags.BoolVar(&traceMode, "trace", false, "Enable trace logging, including every searched path")
	flags.BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	rootCmd.Flags().Float64Var(&sampleRate, "sample-rate", 0, "Device sample rate in Hz (default: 44100)")
	rootCmd.Flags().IntVar(&blockSize, "block-size", 0, "Device block size in samples (default: 512)")
	rootCmd.Flags().DurationVar(&exitAfter, "exit-after", 0, "Quit after this long (default: run until interrupted)")
}

func run(cmd *cobra.Command, _ []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	cfg := env.cfg
	log := env.log

	name := env.pluginName()

	log.Info("host starting",
		"exe", env.exe,
		"name", name,
		"appDir", env.dirs.App,
		"config", env.loader.Sources(),
	)

	loader := hostplugin.NewLoader(env.newFormat(), env.generator(), env.trial(), log)

	audioCfg := cfg.GetAudio()
	device := audio.NewNullDevice(audioCfg.GetSampleRate(), audioCfg.GetBlockSize())
	bridge := audio.NewBridge(device,
		audio.WithLogger(log),
		audio.WithChannels(audioCfg.GetInputs(), audioCfg.GetOutputs()),
	)

	h := host.New(loader, bridge,
		host.WithLogger(log),
		host.WithPlaceholderName(cfg.GetHost().GetPlaceholderName()),
		host.WithExtension(cfg.GetSearch().GetExtension()),
	)

	crashHost = h
	crashConfig = cfg

	if audioErr := h.Run(name); audioErr != nil {
		log.Error("audio unavailable", "error", audioErr)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if exitAfter > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, exitAfter)
		defer cancel()
	}

	theme := color.NewTheme(color.Profile(cfg.GetHost().NoColor) && color.IsTerminal(os.Stdout))

	uiErr := tui.Run(ctx, h, theme, cmd.OutOrStdout())

	log.Info("host stopping", "status", h.Status())

	if closeErr := h.Close(); closeErr != nil {
		log.Error("teardown failed", "error", closeErr)

		return errors.CombineErrors(uiErr, errors.Wrap(closeErr, "failed to shut down"))
	}

	return uiErr
}

// handlePanic writes a crash dump and reports where it went.
func handlePanic(recovered any) {
	fmt.Fprintf(os.Stderr, "panic: %v\n", recovered)

	var src crashdump.Source
	if crashHost != nil {
		src = crashHost
	}

	info := crashdump.Collect(recovered, version, src, crashConfig)

	store, err := crashdump.NewStore(crashdump.DefaultDir(), crashdump.DefaultMaxDumps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open crash dump directory: %v\n", err)

		return
	}

	path, err := store.Write(info)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write crash dump: %v\n", err)

		return
	}

	fmt.Fprintf(os.Stderr, "crash dump saved to: %s\n", path)
}
