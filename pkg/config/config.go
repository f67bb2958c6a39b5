// Package config provides configuration schema types for towelhost.
package config

import "strings"

const (
	// DefaultPlaceholderName is the executable name that means "no plugin selected".
	DefaultPlaceholderName = "TowelHost"

	// DefaultExtension is the bundle extension searched for.
	DefaultExtension = ".component"

	// DefaultTrialSampleRate and DefaultTrialBlockSize are handed to the format
	// when instantiating, before the device configuration is known.
	DefaultTrialSampleRate = 44100.0
	DefaultTrialBlockSize  = 512

	// DefaultSampleRate and DefaultBlockSize drive the software device.
	DefaultSampleRate = 44100.0
	DefaultBlockSize  = 512

	// DefaultChannels is requested for both directions when opening the device.
	DefaultChannels = 2
)

// Config represents the root configuration for towelhost.
type Config struct {
	// Host controls plugin selection.
	Host *HostConfig `json:"host,omitempty" koanf:"host" toml:"host,omitempty"`

	// Search controls where bundles are looked up.
	Search *SearchConfig `json:"search,omitempty" koanf:"search" toml:"search,omitempty"`

	// Trial holds the settings used while instantiating a plugin.
	Trial *TrialConfig `json:"trial,omitempty" koanf:"trial" toml:"trial,omitempty"`

	// Audio configures the audio device.
	Audio *AudioConfig `json:"audio,omitempty" koanf:"audio" toml:"audio,omitempty"`

	// Log configures the log file.
	Log *LogConfig `json:"log,omitempty" koanf:"log" toml:"log,omitempty"`
}

// HostConfig controls which plugin is loaded.
type HostConfig struct {
	// PlaceholderName is the application name that puts the host in the waiting state.
	// Default: "TowelHost"
	PlaceholderName string `json:"placeholder_name,omitempty" koanf:"placeholder_name" toml:"placeholder_name,omitempty"`

	// Plugin overrides the name derived from the executable.
	Plugin string `json:"plugin,omitempty" koanf:"plugin" toml:"plugin,omitempty"`

	// NoColor disables styled terminal output.
	NoColor bool `json:"no_color,omitempty" koanf:"no_color" toml:"no_color,omitempty"`
}

// SearchConfig controls bundle lookup.
type SearchConfig struct {
	// Extension is the bundle directory extension, including the dot.
	// Default: ".component"
	Extension string `json:"extension,omitempty" koanf:"extension" toml:"extension,omitempty" jsonschema:"example=.component"`

	// AppDir overrides the directory next to the application.
	AppDir string `json:"app_dir,omitempty" koanf:"app_dir" toml:"app_dir,omitempty"`

	// UserDir overrides the per-user plugin directory.
	UserDir string `json:"user_dir,omitempty" koanf:"user_dir" toml:"user_dir,omitempty"`

	// SystemDir overrides the system-wide plugin directory.
	SystemDir string `json:"system_dir,omitempty" koanf:"system_dir" toml:"system_dir,omitempty"`

	// Patterns are doublestar patterns matched against directory entries
	// during the case-insensitive scan.
	// Default: ["*<extension>"]
	Patterns []string `json:"patterns,omitempty" koanf:"patterns" toml:"patterns,omitempty"`
}

// TrialConfig holds instantiation settings.
type TrialConfig struct {
	// SampleRate in Hz. Default: 44100
	SampleRate float64 `json:"sample_rate,omitempty" koanf:"sample_rate" toml:"sample_rate,omitempty" jsonschema:"minimum=0,maximum=768000"`

	// BlockSize in samples. Default: 512
	BlockSize int `json:"block_size,omitempty" koanf:"block_size" toml:"block_size,omitempty" jsonschema:"minimum=0,maximum=16384"`
}

// AudioConfig configures the device.
type AudioConfig struct {
	// SampleRate in Hz. Default: 44100
	SampleRate float64 `json:"sample_rate,omitempty" koanf:"sample_rate" toml:"sample_rate,omitempty" jsonschema:"minimum=0,maximum=768000"`

	// BlockSize in samples. Default: 512
	BlockSize int `json:"block_size,omitempty" koanf:"block_size" toml:"block_size,omitempty" jsonschema:"minimum=0,maximum=16384"`

	// Inputs is the number of input channels requested. Default: 2
	Inputs *int `json:"inputs,omitempty" koanf:"inputs" toml:"inputs,omitempty" jsonschema:"minimum=0,maximum=64"`

	// Outputs is the number of output channels requested. Default: 2
	Outputs *int `json:"outputs,omitempty" koanf:"outputs" toml:"outputs,omitempty" jsonschema:"minimum=0,maximum=64"`
}

// LogConfig configures logging.
type LogConfig struct {
	// File overrides the log file path.
	File string `json:"file,omitempty" koanf:"file" toml:"file,omitempty"`

	// Debug enables info-level messages.
	Debug bool `json:"debug,omitempty" koanf:"debug" toml:"debug,omitempty"`

	// Trace enables debug-level messages.
	Trace bool `json:"trace,omitempty" koanf:"trace" toml:"trace,omitempty"`
}

// GetHost returns the host config, creating it if it doesn't exist.
func (c *Config) GetHost() *HostConfig {
	if c.Host == nil {
		c.Host = &HostConfig{}
	}

	return c.Host
}

// GetSearch returns the search config, creating it if it doesn't exist.
func (c *Config) GetSearch() *SearchConfig {
	if c.Search == nil {
		c.Search = &SearchConfig{}
	}

	return c.Search
}

// GetTrial returns the trial config, creating it if it doesn't exist.
func (c *Config) GetTrial() *TrialConfig {
	if c.Trial == nil {
		c.Trial = &TrialConfig{}
	}

	return c.Trial
}

// GetAudio returns the audio config, creating it if it doesn't exist.
func (c *Config) GetAudio() *AudioConfig {
	if c.Audio == nil {
		c.Audio = &AudioConfig{}
	}

	return c.Audio
}

// GetLog returns the log config, creating it if it doesn't exist.
func (c *Config) GetLog() *LogConfig {
	if c.Log == nil {
		c.Log = &LogConfig{}
	}

	return c.Log
}

// GetPlaceholderName returns the placeholder name or the default.
func (h *HostConfig) GetPlaceholderName() string {
	if h == nil || h.PlaceholderName == "" {
		return DefaultPlaceholderName
	}

	return h.PlaceholderName
}

// IsPlaceholder reports whether name equals the placeholder, ignoring case.
func (h *HostConfig) IsPlaceholder(name string) bool {
	return strings.EqualFold(name, h.GetPlaceholderName())
}

// GetExtension returns the bundle extension, always with a leading dot.
func (s *SearchConfig) GetExtension() string {
	if s == nil || s.Extension == "" {
		return DefaultExtension
	}

	if !strings.HasPrefix(s.Extension, ".") {
		return "." + s.Extension
	}

	return s.Extension
}

// GetPatterns returns the scan patterns or the extension-derived default.
func (s *SearchConfig) GetPatterns() []string {
	if s == nil || len(s.Patterns) == 0 {
		return []string{"*" + s.GetExtension()}
	}

	return s.Patterns
}

// GetSampleRate returns the trial sample rate or the default.
func (t *TrialConfig) GetSampleRate() float64 {
	if t == nil || t.SampleRate <= 0 {
		return DefaultTrialSampleRate
	}

	return t.SampleRate
}

// GetBlockSize returns the trial block size or the default.
func (t *TrialConfig) GetBlockSize() int {
	if t == nil || t.BlockSize <= 0 {
		return DefaultTrialBlockSize
	}

	return t.BlockSize
}

// GetSampleRate returns the device sample rate or the default.
func (a *AudioConfig) GetSampleRate() float64 {
	if a == nil || a.SampleRate <= 0 {
		return DefaultSampleRate
	}

	return a.SampleRate
}

// GetBlockSize returns the device block size or the default.
func (a *AudioConfig) GetBlockSize() int {
	if a == nil || a.BlockSize <= 0 {
		return DefaultBlockSize
	}

	return a.BlockSize
}

// GetInputs returns the requested input channel count or the default.
func (a *AudioConfig) GetInputs() int {
	if a == nil || a.Inputs == nil {
		return DefaultChannels
	}

	return *a.Inputs
}

// GetOutputs returns the requested output channel count or the default.
func (a *AudioConfig) GetOutputs() int {
	if a == nil || a.Outputs == nil {
		return DefaultChannels
	}

	return *a.Outputs
}
