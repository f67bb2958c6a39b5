package config

import (
	"github.com/towelWet/TowelHost/pkg/config"
)

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *config.Config {
	channels := config.DefaultChannels

	return &config.Config{
		Host: &config.HostConfig{
			PlaceholderName: config.DefaultPlaceholderName,
		},
		Search: &config.SearchConfig{
			Extension: config.DefaultExtension,
		},
		Trial: &config.TrialConfig{
			SampleRate: config.DefaultTrialSampleRate,
			BlockSize:  config.DefaultTrialBlockSize,
		},
		Audio: &config.AudioConfig{
			SampleRate: config.DefaultSampleRate,
			BlockSize:  config.DefaultBlockSize,
			Inputs:     &channels,
			Outputs:    &channels,
		},
		Log: &config.LogConfig{},
	}
}

// defaultsToMap converts DefaultConfig to a map for koanf loading.
func defaultsToMap() map[string]any {
	return map[string]any{
		"host": map[string]any{
			"placeholder_name": config.DefaultPlaceholderName,
		},
		"search": map[string]any{
			"extension": config.DefaultExtension,
		},
		"trial": map[string]any{
			"sample_rate": config.DefaultTrialSampleRate,
			"block_size":  config.DefaultTrialBlockSize,
		},
		"audio": map[string]any{
			"sample_rate": config.DefaultSampleRate,
			"block_size":  config.DefaultBlockSize,
			"inputs":      config.DefaultChannels,
			"outputs":     config.DefaultChannels,
		},
	}
}
