package main

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	internalconfig "github.com/towelWet/TowelHost/internal/config"
	"github.com/towelWet/TowelHost/internal/host"
	hostplugin "github.com/towelWet/TowelHost/internal/plugin"
	"github.com/towelWet/TowelHost/internal/search"
	"github.com/towelWet/TowelHost/internal/soformat"
	"github.com/towelWet/TowelHost/internal/xdg"
	"github.com/towelWet/TowelHost/pkg/config"
	"github.com/towelWet/TowelHost/pkg/logger"
)

const sidecarExt = ".toml"

// environment is what every command needs: where the application lives,
// the merged configuration, the search directories and the log.
type environment struct {
	exe     string
	appName string
	loader  *internalconfig.KoanfLoader
	cfg     *config.Config
	dirs    search.Dirs
	log     logger.Logger
	closeFn func() error
}

func loadEnvironment(cmd *cobra.Command) (*environment, error) {
	exe, err := host.CurrentExecutable()
	if err != nil {
		return nil, err
	}

	env := &environment{
		exe:     exe,
		appName: host.ExecutableName(exe),
		closeFn: func() error { return nil },
	}

	appLocation := host.AppLocation(exe)

	var sidecar string
	if env.appName != "" {
		sidecar = filepath.Join(appLocation, env.appName+sidecarExt)
	}

	env.loader = internalconfig.NewKoanfLoader(sidecar)

	env.cfg, err = env.loader.Load(buildFlagsMap(cmd))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	env.dirs = searchDirs(env.cfg.GetSearch(), appLocation)

	logCfg := env.cfg.GetLog()

	path := logCfg.File
	if path == "" {
		path = xdg.LogFile()
	}

	fileLog, err := logger.Open(xdg.ExpandPathSilent(path), "towelhost", version, logCfg.Debug, logCfg.Trace)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	env.log = fileLog
	env.closeFn = fileLog.Close

	return env, nil
}

// searchDirs applies the configured overrides to the default tier directories.
func searchDirs(cfg *config.SearchConfig, appLocation string) search.Dirs {
	dirs := search.Dirs{
		App:    appLocation,
		User:   search.DefaultUserDir(),
		System: search.DefaultSystemDir(),
	}

	if cfg.AppDir != "" {
		dirs.App = xdg.ExpandPathSilent(cfg.AppDir)
	}

	if cfg.UserDir != "" {
		dirs.User = xdg.ExpandPathSilent(cfg.UserDir)
	}

	if cfg.SystemDir != "" {
		dirs.System = xdg.ExpandPathSilent(cfg.SystemDir)
	}

	return dirs
}

// pluginName returns the configured override or the application name.
func (e *environment) pluginName() string {
	if name := e.cfg.GetHost().Plugin; name != "" {
		return name
	}

	return e.appName
}

func (e *environment) generator() *search.Generator {
	s := e.cfg.GetSearch()
	gen := search.NewGenerator(e.dirs, s.GetExtension(), s.GetPatterns())

	e.log.Debug("search roots", "roots", gen.Roots(), "extension", gen.Extension())

	return gen
}

func (e *environment) trial() hostplugin.Trial {
	t := e.cfg.GetTrial()

	return hostplugin.Trial{SampleRate: t.GetSampleRate(), BlockSize: t.GetBlockSize()}
}

func (e *environment) newFormat() *soformat.Format {
	return soformat.New(soformat.WithLogger(e.log))
}

func (e *environment) close() {
	_ = e.closeFn()
}

// buildFlagsMap collects the flags set on the command line, keyed by flag name.
func buildFlagsMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "plugin":
			flags[f.Name] = pluginName
		case "extension":
			flags[f.Name] = extension
		case "app-dir":
			flags[f.Name] = appDir
		case "user-dir":
			flags[f.Name] = userDir
		case "system-dir":
			flags[f.Name] = systemDir
		case "sample-rate":
			flags[f.Name] = sampleRate
		case "block-size":
			flags[f.Name] = blockSize
		case "log-file":
			flags[f.Name] = logFile
		case "debug":
			flags[f.Name] = debugMode
		case "trace":
			flags[f.Name] = traceMode
		case "no-color":
			flags[f.Name] = noColorFlag
		}
	})

	return flags
}
