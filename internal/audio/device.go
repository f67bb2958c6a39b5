// Package audio bridges an audio device to a plugin processor.
package audio

//go:generate mockgen -source=device.go -destination=device_mock.go -package=audio

import (
	"time"

	"github.com/towelWet/TowelHost/pkg/plugin"
)

// Config is the configuration a device reports once opened.
type Config struct {
	SampleRate    float64
	BlockSize     int
	ActiveInputs  int
	ActiveOutputs int
}

// BlockDuration returns the time span of one block.
func (c Config) BlockDuration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(c.BlockSize) / c.SampleRate * float64(time.Second))
}

// Callback receives audio from a device.
type Callback interface {
	// Process is called on the realtime goroutine for every block. Nil
	// channels in inputs or outputs are inactive.
	Process(inputs, outputs [][]float32, numSamples int)

	// AboutToStart is called before the first Process call after registration.
	AboutToStart(cfg Config)

	// Stopped is called after the last Process call.
	Stopped()
}

// Device is an audio device able to drive one callback.
type Device interface {
	// Open opens the device with the requested channel counts.
	Open(inputs, outputs int) error

	// Current returns the active configuration, if the device is open.
	Current() (Config, bool)

	// Register starts delivering blocks to cb.
	Register(cb Callback) error

	// Unregister stops delivering blocks to cb. It returns once no Process
	// call for cb is running. Unregistering an unknown callback is a no-op.
	Unregister(cb Callback)

	// Close releases the device.
	Close() error
}

// Processor is the part of a plugin instance the bridge drives.
type Processor interface {
	Configure(inputs, outputs int, sampleRate float64, blockSize int) error
	Prepare(sampleRate float64, blockSize int)
	ProcessBlock(buf *plugin.AudioBuffer, events *plugin.EventBuffer)
	Release()
}
