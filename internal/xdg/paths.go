// Package xdg locates the files towelhost keeps per user: the global config,
// the log and crash dumps. Plugin search directories live in internal/search.
package xdg

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

const appName = "towelhost"

// LogFileEnv overrides the log file location.
const LogFileEnv = "TOWELHOST_LOG_FILE"

const (
	configFileName = "config.toml"
	logFileName    = "towelhost.log"
	crashDirName   = "crashes"
	privateDirMode = 0o700
)

// base returns $env, or the fallback path below the home directory.
func base(env string, fallback ...string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "~"
	}

	return filepath.Join(append([]string{home}, fallback...)...)
}

// ConfigHome returns $XDG_CONFIG_HOME or ~/.config.
func ConfigHome() string { return base("XDG_CONFIG_HOME", ".config") }

// DataHome returns $XDG_DATA_HOME or ~/.local/share.
func DataHome() string { return base("XDG_DATA_HOME", ".local", "share") }

// StateHome returns $XDG_STATE_HOME or ~/.local/state.
func StateHome() string { return base("XDG_STATE_HOME", ".local", "state") }

// ConfigDir returns ConfigHome()/towelhost.
func ConfigDir() string { return filepath.Join(ConfigHome(), appName) }

// DataDir returns DataHome()/towelhost. Non-macOS systems keep user plugins here.
func DataDir() string { return filepath.Join(DataHome(), appName) }

// StateDir returns StateHome()/towelhost.
func StateDir() string { return filepath.Join(StateHome(), appName) }

// GlobalConfigFile returns ConfigDir()/config.toml.
func GlobalConfigFile() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// LogFile returns $TOWELHOST_LOG_FILE or StateDir()/towelhost.log.
func LogFile() string {
	if v := os.Getenv(LogFileEnv); v != "" {
		return v
	}

	return filepath.Join(StateDir(), logFileName)
}

// CrashDir returns StateDir()/crashes.
func CrashDir() string {
	return filepath.Join(StateDir(), crashDirName)
}

// ExpandPath replaces a leading "~" or "~/" with the home directory, so
// search directory overrides can be written as "~/Plug-Ins". Other paths are
// returned as given; "~user" forms are rejected.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	rest := path[1:]
	if rest != "" && !strings.HasPrefix(rest, "/") {
		return "", errors.Newf("paths starting with ~ must be either ~ or ~/subdir, got %q", path)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}

	return filepath.Join(home, rest), nil
}

// ExpandPathSilent is ExpandPath that returns path unchanged on error.
func ExpandPathSilent(path string) string {
	if expanded, err := ExpandPath(path); err == nil {
		return expanded
	}

	return path
}

// EnsureDir creates path with mode 0700, tightening an existing directory
// to that mode.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, privateDirMode); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", path)
	}

	if err := os.Chmod(path, privateDirMode); err != nil {
		return errors.Wrapf(err, "failed to set permissions on %s", path)
	}

	return nil
}
