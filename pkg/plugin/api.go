// Package plugin defines the native plugin boundary consumed by the host.
//
// A Format discovers plugin descriptors inside a bundle and turns one of them
// into a live Instance. The host never looks inside a plugin; everything it
// needs goes through these interfaces.
//
// Example shared-object plugin exported from a Go plugin build:
//
//	package main
//
//	import "github.com/towelWet/TowelHost/pkg/plugin"
//
//	func NewInstance(desc plugin.Descriptor, sampleRate float64, blockSize int) (plugin.Instance, error) {
//		return &gain{name: desc.Name}, nil
//	}
package plugin

//go:generate mockgen -source=api.go -destination=api_mock.go -package=plugin

import "fmt"

// DefaultEditorWidth and DefaultEditorHeight are used when a visual interface
// reports no size of its own.
const (
	DefaultEditorWidth  = 600
	DefaultEditorHeight = 400
)

// Format is a plugin format backend able to enumerate and instantiate plugins
// stored in bundles.
type Format interface {
	// Name identifies the format. Descriptors whose FormatName differs are skipped.
	Name() string

	// Discover lists the plugin types declared by the bundle at path.
	// An empty slice with nil error means the bundle declared nothing.
	Discover(path string) ([]Descriptor, error)

	// Instantiate creates an instance for desc using trial settings.
	Instantiate(desc Descriptor, sampleRate float64, blockSize int) (Instance, error)

	// Close releases format-wide resources. Instances created by the format
	// must be closed first.
	Close() error
}

// Instance is a loaded plugin ready to be driven by an audio callback.
type Instance interface {
	// Name returns the plugin's display name.
	Name() string

	// Configure sets the channel layout and processing settings.
	Configure(inputs, outputs int, sampleRate float64, blockSize int) error

	// Prepare is called before the first ProcessBlock with the given settings.
	Prepare(sampleRate float64, blockSize int)

	// ProcessBlock processes buf in place. It runs on the realtime goroutine.
	ProcessBlock(buf *AudioBuffer, events *EventBuffer)

	// Release frees processing resources acquired in Prepare.
	Release()

	// HasVisualInterface reports whether the plugin provides an editor.
	HasVisualInterface() bool

	// CreateVisualInterface creates the editor. It may return nil.
	CreateVisualInterface() VisualInterface

	// Close releases the native handle.
	Close() error
}

// VisualInterface is a plugin editor. Embedding it into a window is left to
// the front end.
type VisualInterface interface {
	// Size returns the preferred editor size in pixels.
	Size() (width, height int)

	// Close destroys the editor.
	Close() error
}

// Factory is the entry point a shared-object plugin exports.
type Factory func(desc Descriptor, sampleRate float64, blockSize int) (Instance, error)

// Descriptor describes one plugin type found in a bundle.
type Descriptor struct {
	// Name is the plugin's display name. Descriptors without one are invalid.
	Name string `json:"name" toml:"name"`

	// Manufacturer is the vendor name.
	Manufacturer string `json:"manufacturer,omitempty" toml:"manufacturer"`

	// Version is the plugin version string.
	Version string `json:"version,omitempty" toml:"version"`

	// Category is a free-form category such as "Effect" or "Synth".
	Category string `json:"category,omitempty" toml:"category"`

	// FormatName must match Format.Name for the descriptor to be usable.
	FormatName string `json:"format" toml:"format"`

	// FileOrIdentifier is the bundle path or native identifier.
	FileOrIdentifier string `json:"file_or_identifier" toml:"-"`

	// Inputs and Outputs are the default channel counts.
	Inputs  int `json:"inputs" toml:"inputs"`
	Outputs int `json:"outputs" toml:"outputs"`

	// IsInstrument marks generators that take no audio input.
	IsInstrument bool `json:"instrument" toml:"instrument"`

	// EntryPoint is the exported factory symbol, when the format uses one.
	EntryPoint string `json:"entry_point,omitempty" toml:"entry_point"`

	// Binary is the executable inside the bundle, relative to its binary directory.
	Binary string `json:"binary,omitempty" toml:"binary"`
}

// Valid reports whether the descriptor may be instantiated by a format named formatName.
func (d Descriptor) Valid(formatName string) bool {
	return d.Name != "" && d.FormatName == formatName
}

// IdentifierString returns a stable identifier for logs and listings.
func (d Descriptor) IdentifierString() string {
	return fmt.Sprintf("%s-%s-%s-%s", d.FormatName, d.Name, d.Manufacturer, d.Version)
}

// Kind returns "instrument" or "effect".
func (d Descriptor) Kind() string {
	if d.IsInstrument {
		return "instrument"
	}

	return "effect"
}
