package plugin

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/towelWet/TowelHost/internal/search"
	"github.com/towelWet/TowelHost/pkg/logger"
	"github.com/towelWet/TowelHost/pkg/plugin"
)

// Loader is the entry point turning a short name into a plugin instance.
// Each call resolves and instantiates from scratch; nothing is cached.
type Loader struct {
	mu           sync.Mutex
	format       plugin.Format
	resolver     *Resolver
	instantiator *Instantiator
	log          logger.Logger
	lastError    string
	closed       bool
}

// NewLoader creates a Loader. The loader owns format and closes it in Close.
func NewLoader(format plugin.Format, gen *search.Generator, trial Trial, log logger.Logger) *Loader {
	log = log.With("format", format.Name())

	return &Loader{
		format:       format,
		resolver:     NewResolver(gen, log),
		instantiator: NewInstantiator(format, trial, log),
		log:          log,
	}
}

// LoadPlugin resolves name and instantiates it. On failure LastError holds
// a message fit for display.
//
//nolint:ireturn // the instance type belongs to the format
func (l *Loader) LoadPlugin(name string) (plugin.Instance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastError = ""

	if l.closed {
		return nil, l.fail(ErrLoaderClosed)
	}

	l.log.Info("loading plugin", "name", name)

	bundle, err := l.resolver.Resolve(name)
	if err != nil {
		return nil, l.fail(err)
	}

	inst, err := l.instantiator.Instantiate(bundle)
	if err != nil {
		return nil, l.fail(errors.Wrapf(err, "%s", bundle.Path))
	}

	l.log.Info("plugin loaded", "name", inst.Name(), "path", bundle.Path)

	return inst, nil
}

// Inspect resolves name and lists what the format discovers, without
// instantiating anything.
func (l *Loader) Inspect(name string) (*ResolvedBundle, []plugin.Descriptor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, nil, ErrLoaderClosed
	}

	bundle, err := l.resolver.Resolve(name)
	if err != nil {
		return nil, nil, err
	}

	descs, err := l.instantiator.Discover(bundle)

	return bundle, descs, err
}

// LastError returns the message of the most recent failed LoadPlugin call,
// or an empty string when the last call succeeded.
func (l *Loader) LastError() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.lastError
}

func (l *Loader) fail(err error) error {
	l.lastError = FormatError(err)
	l.log.Error("failed to load plugin", "error", err)

	return err
}

// Close tears down the format. Instances must be closed before.
func (l *Loader) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}

	l.closed = true

	return errors.Wrap(l.format.Close(), "failed to close plugin format")
}
