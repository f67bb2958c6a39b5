// Package config provides internal configuration loading and processing.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/towelWet/TowelHost/internal/xdg"
	"github.com/towelWet/TowelHost/pkg/config"
)

// EnvPrefix is the prefix of environment variables read into the config.
const EnvPrefix = "TOWELHOST_"

var (
	// ErrInvalidTOML is returned when a TOML file cannot be parsed.
	ErrInvalidTOML = errors.New("invalid TOML")

	// ErrInvalidPermissions is returned when a config file has insecure permissions.
	ErrInvalidPermissions = errors.New("config file has insecure permissions")
)

// flagPaths maps CLI flag names to config keys.
var flagPaths = map[string]string{
	"plugin":      "host.plugin",
	"no-color":    "host.no_color",
	"extension":   "search.extension",
	"app-dir":     "search.app_dir",
	"user-dir":    "search.user_dir",
	"system-dir":  "search.system_dir",
	"sample-rate": "audio.sample_rate",
	"block-size":  "audio.block_size",
	"log-file":    "log.file",
	"debug":       "log.debug",
	"trace":       "log.trace",
}

// KoanfLoader handles configuration loading from multiple sources using koanf.
// Precedence order (highest to lowest):
// 1. CLI Flags
// 2. Environment Variables (TOWELHOST_*)
// 3. Sidecar Config (<app dir>/<app name>.toml)
// 4. Global Config ($XDG_CONFIG_HOME/towelhost/config.toml)
// 5. Defaults
type KoanfLoader struct {
	k           *koanf.Koanf
	paths       xdg.PathResolver
	sidecarPath string
	unmarshal   koanf.UnmarshalConf
}

// NewKoanfLoader creates a loader using the real XDG locations.
// sidecarPath may be empty.
func NewKoanfLoader(sidecarPath string) *KoanfLoader {
	return NewKoanfLoaderWithResolver(xdg.DefaultResolver(), sidecarPath)
}

// NewKoanfLoaderWithResolver creates a loader with a custom path resolver (for testing).
func NewKoanfLoaderWithResolver(paths xdg.PathResolver, sidecarPath string) *KoanfLoader {
	return &KoanfLoader{
		k:           koanf.New("."),
		paths:       paths,
		sidecarPath: sidecarPath,
		unmarshal: koanf.UnmarshalConf{
			Tag:           "koanf",
			FlatPaths:     false,
			DecoderConfig: CustomDecoderConfig(),
		},
	}
}

// Load loads and validates configuration from all sources.
func (l *KoanfLoader) Load(flags map[string]any) (*config.Config, error) {
	cfg, err := l.LoadWithoutValidation(flags)
	if err != nil {
		return nil, err
	}

	if err := NewValidator().Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// LoadWithoutValidation loads configuration without running validation.
// Defaults → Global TOML → Sidecar TOML → Env Vars → CLI Flags
func (l *KoanfLoader) LoadWithoutValidation(flags map[string]any) (*config.Config, error) {
	l.k = koanf.New(".")

	if err := l.k.Load(confmap.Provider(defaultsToMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	if err := l.loadTOMLFile(l.GlobalConfigPath()); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load global config")
	}

	if l.sidecarPath != "" {
		if err := l.loadTOMLFile(l.sidecarPath); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "failed to load sidecar config")
		}
	}

	envOpt := env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	if len(flags) > 0 {
		if err := l.k.Load(confmap.Provider(flagsToConfig(flags), "."), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	var cfg config.Config
	if err := l.k.UnmarshalWithConf("", &cfg, l.unmarshal); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// loadTOMLFile loads a TOML configuration file, rejecting world-writable files.
func (l *KoanfLoader) loadTOMLFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.Mode().Perm()&0o002 != 0 {
		return errors.Wrapf(
			ErrInvalidPermissions,
			"%s is world-writable (mode: %s)",
			path,
			info.Mode().Perm(),
		)
	}

	if err := l.k.Load(file.Provider(path), tomlparser.Parser()); err != nil {
		return errors.Wrapf(errors.Mark(err, ErrInvalidTOML), "%s", path)
	}

	return nil
}

// envTransform maps TOWELHOST_SECTION_KEY_NAME to section.key_name.
// TOWELHOST_LOG_FILE is shared with xdg.LogFile and lands on log.file.
func envTransform(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key, value
	}

	return section + "." + rest, value
}

// flagsToConfig converts CLI flags to a nested configuration map.
// Unknown flags are ignored.
func flagsToConfig(flags map[string]any) map[string]any {
	result := make(map[string]any)

	for name, value := range flags {
		path, ok := flagPaths[name]
		if !ok {
			continue
		}

		section, key, _ := strings.Cut(path, ".")
		ensureMapKey(result, section)[key] = value
	}

	return result
}

func ensureMapKey(cfg map[string]any, key string) map[string]any {
	if _, ok := cfg[key]; !ok {
		cfg[key] = make(map[string]any)
	}

	result, _ := cfg[key].(map[string]any)

	return result
}

// GlobalConfigPath returns the path to the global configuration file.
func (l *KoanfLoader) GlobalConfigPath() string {
	return l.paths.GlobalConfigFile()
}

// SidecarPath returns the sidecar configuration path, possibly empty.
func (l *KoanfLoader) SidecarPath() string {
	return l.sidecarPath
}

// Sources lists the configuration files that exist, in load order.
func (l *KoanfLoader) Sources() []string {
	var sources []string

	for _, path := range []string{l.GlobalConfigPath(), l.sidecarPath} {
		if path != "" && fileExists(path) {
			sources = append(sources, path)
		}
	}

	return sources
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
