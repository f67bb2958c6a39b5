package xdg

import "path/filepath"

// PathResolver locates per-user files. ResolverFor roots them at a given
// home directory so config tests never touch the real one.
type PathResolver interface {
	GlobalConfigFile() string
	LogFile() string
	CrashDir() string
}

// DefaultResolver returns a PathResolver using real XDG paths.
func DefaultResolver() PathResolver {
	return envResolver{}
}

type envResolver struct{}

func (envResolver) GlobalConfigFile() string { return GlobalConfigFile() }

func (envResolver) LogFile() string { return LogFile() }

func (envResolver) CrashDir() string { return CrashDir() }

// ResolverFor returns a PathResolver rooted at homeDir. XDG variables and
// TOWELHOST_LOG_FILE are ignored.
func ResolverFor(homeDir string) PathResolver {
	return homeResolver(homeDir)
}

type homeResolver string

func (h homeResolver) GlobalConfigFile() string {
	return filepath.Join(string(h), ".config", appName, configFileName)
}

func (h homeResolver) LogFile() string {
	return filepath.Join(h.state(), logFileName)
}

func (h homeResolver) CrashDir() string {
	return filepath.Join(h.state(), crashDirName)
}

func (h homeResolver) state() string {
	return filepath.Join(string(h), ".local", "state", appName)
}
