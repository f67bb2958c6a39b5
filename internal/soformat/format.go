// Package soformat implements plugin.Format on top of Go shared objects.
//
// A bundle is a directory laid out as:
//
//	Reverb.component/
//	  Contents/
//	    Info.toml       # [[plugin]] entries, optional
//	    MacOS/
//	      Reverb.so     # built with -buildmode=plugin
//
// The shared object exports a plugin.Factory, by default named NewInstance.
package soformat

import (
	"os"
	"path/filepath"
	goplugin "plugin"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	hostplugin "github.com/towelWet/TowelHost/internal/plugin"
	"github.com/towelWet/TowelHost/pkg/logger"
	"github.com/towelWet/TowelHost/pkg/plugin"
)

const (
	// Name is the format name descriptors must carry.
	Name = "SharedObject"

	// DefaultEntryPoint is the factory symbol looked up when a descriptor names none.
	DefaultEntryPoint = "NewInstance"

	// ManifestFile is the manifest path inside a bundle.
	ManifestFile = "Contents/Info.toml"

	// BinaryDir holds the shared objects inside a bundle.
	BinaryDir = "Contents/MacOS"

	binaryExt = ".so"
)

var (
	// ErrNoBinary is returned when a bundle has no shared object to open.
	ErrNoBinary = errors.New("bundle contains no shared object")

	// ErrBadEntryPoint is returned when the entry point has an unexpected type.
	ErrBadEntryPoint = errors.New("entry point is not a plugin factory")

	// ErrFormatClosed is returned when instantiating through a closed format.
	ErrFormatClosed = errors.New("format has been closed")
)

// Symbols looks up exported symbols of an opened shared object.
type Symbols interface {
	Lookup(symName string) (goplugin.Symbol, error)
}

// Opener opens the shared object at path.
type Opener func(path string) (Symbols, error)

// manifest is the layout of Contents/Info.toml.
type manifest struct {
	Plugins []plugin.Descriptor `toml:"plugin"`
}

// Format loads plugins from Go shared objects inside bundles.
type Format struct {
	mu     sync.Mutex
	open   Opener
	opened map[string]Symbols
	log    logger.Logger
	closed bool
}

// Option configures the Format.
type Option func(*Format)

// WithLogger sets the logger for the format.
func WithLogger(log logger.Logger) Option {
	return func(f *Format) {
		if log != nil {
			f.log = log
		}
	}
}

// WithOpener replaces the shared object opener.
func WithOpener(open Opener) Option {
	return func(f *Format) {
		if open != nil {
			f.open = open
		}
	}
}

// New creates a shared-object format.
func New(opts ...Option) *Format {
	f := &Format{
		open:   openSharedObject,
		opened: make(map[string]Symbols),
		log:    logger.NewNoOpLogger(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func openSharedObject(path string) (Symbols, error) {
	p, err := goplugin.Open(path)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Name returns the format name.
func (*Format) Name() string {
	return Name
}

// Discover reads the bundle manifest. A bundle without a manifest declares
// nothing.
func (*Format) Discover(path string) ([]plugin.Descriptor, error) {
	data, err := os.ReadFile(filepath.Join(path, filepath.FromSlash(ManifestFile)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read bundle manifest")
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", ManifestFile)
	}

	for i := range m.Plugins {
		if m.Plugins[i].FormatName == "" {
			m.Plugins[i].FormatName = Name
		}

		m.Plugins[i].FileOrIdentifier = path
	}

	return m.Plugins, nil
}

// Instantiate opens the descriptor's shared object and calls its factory.
//
//nolint:ireturn // the instance type belongs to the plugin
func (f *Format) Instantiate(desc plugin.Descriptor, sampleRate float64, blockSize int) (plugin.Instance, error) {
	if desc.FileOrIdentifier == "" {
		return nil, errors.New("descriptor has no bundle path")
	}

	factory, err := f.factory(desc)
	if err != nil {
		return nil, err
	}

	return callFactory(factory, desc, sampleRate, blockSize)
}

func (f *Format) factory(desc plugin.Descriptor) (plugin.Factory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, ErrFormatClosed
	}

	binary, err := binaryPath(desc)
	if err != nil {
		return nil, err
	}

	syms, ok := f.opened[binary]
	if !ok {
		f.log.Debug("opening shared object", "path", binary)

		syms, err = f.open(binary)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %s", binary)
		}

		f.opened[binary] = syms
	}

	entry := desc.EntryPoint
	if entry == "" {
		entry = DefaultEntryPoint
	}

	sym, err := syms.Lookup(entry)
	if err != nil {
		return nil, errors.Wrapf(err, "shared object does not export %q", entry)
	}

	switch fn := sym.(type) {
	case func(plugin.Descriptor, float64, int) (plugin.Instance, error):
		return fn, nil
	case plugin.Factory:
		return fn, nil
	case *plugin.Factory:
		if fn != nil && *fn != nil {
			return *fn, nil
		}
	}

	return nil, errors.Wrapf(ErrBadEntryPoint, "%s has type %T", entry, sym)
}

// binaryPath returns the validated shared object path for desc.
func binaryPath(desc plugin.Descriptor) (string, error) {
	bundle := desc.FileOrIdentifier

	name := desc.Binary
	if name == "" {
		found, err := firstBinary(filepath.Join(bundle, filepath.FromSlash(BinaryDir)))
		if err != nil {
			return "", err
		}

		name = found
	}

	path, err := hostplugin.ValidateContained(bundle, filepath.Join(filepath.FromSlash(BinaryDir), name))
	if err != nil {
		return "", errors.Wrap(err, "invalid binary path")
	}

	if err := hostplugin.ValidateExtension(path, []string{binaryExt}); err != nil {
		return "", errors.Wrap(err, "invalid shared object extension")
	}

	return path, nil
}

// firstBinary returns the lexically first shared object in dir.
func firstBinary(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return "", errors.Wrapf(err, "failed to list %s", dir)
	}

	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), binaryExt) {
			return e.Name(), nil
		}
	}

	return "", errors.Wrapf(ErrNoBinary, "%s", dir)
}

//nolint:ireturn // the instance type belongs to the plugin
func callFactory(
	factory plugin.Factory,
	desc plugin.Descriptor,
	sampleRate float64,
	blockSize int,
) (inst plugin.Instance, err error) {
	defer func() {
		if r := recover(); r != nil {
			inst, err = nil, hostplugin.PanicError(r, "instantiation")
		}
	}()

	inst, err = factory(desc, sampleRate, blockSize)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", desc.Name)
	}

	return inst, nil
}

// Close forgets opened shared objects. Go cannot unload them, so they stay
// mapped until the process exits.
func (f *Format) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	clear(f.opened)

	return nil
}
