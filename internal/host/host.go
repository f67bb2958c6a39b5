// Package host composes the plugin loader and the audio bridge into the
// rename-to-load application.
package host

//go:generate mockgen -source=host.go -destination=host_mock.go -package=host

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/towelWet/TowelHost/internal/audio"
	"github.com/towelWet/TowelHost/pkg/config"
	"github.com/towelWet/TowelHost/pkg/logger"
	"github.com/towelWet/TowelHost/pkg/plugin"
)

// PluginLoader loads plugin instances by short name.
type PluginLoader interface {
	LoadPlugin(name string) (plugin.Instance, error)
	LastError() string
	Close() error
}

// Snapshot is a point-in-time view of the host for display.
type Snapshot struct {
	Name         string
	Status       Status
	Message      string
	PluginName   string
	EditorWidth  int
	EditorHeight int
	AudioState   audio.State
	Audio        audio.Config
	AudioActive  bool
	AudioError   string
}

// Host owns the plugin instance and drives its lifecycle.
type Host struct {
	mu          sync.Mutex
	loader      PluginLoader
	bridge      *audio.Bridge
	log         logger.Logger
	placeholder string
	extension   string

	name       string
	status     Status
	lastError  string
	audioError string
	instance   plugin.Instance
	editor     plugin.VisualInterface
	editorW    int
	editorH    int
	closed     bool
}

// Option configures the Host.
type Option func(*Host)

// WithLogger sets the logger for the host.
func WithLogger(log logger.Logger) Option {
	return func(h *Host) {
		if log != nil {
			h.log = log
		}
	}
}

// WithPlaceholderName sets the name that means no plugin was requested.
func WithPlaceholderName(name string) Option {
	return func(h *Host) {
		if name != "" {
			h.placeholder = name
		}
	}
}

// WithExtension sets the bundle extension shown in rename instructions.
func WithExtension(ext string) Option {
	return func(h *Host) {
		if ext != "" {
			h.extension = ext
		}
	}
}

// New creates a Host. The host owns loader and bridge and closes both.
func New(loader PluginLoader, bridge *audio.Bridge, opts ...Option) *Host {
	h := &Host{
		loader:      loader,
		bridge:      bridge,
		log:         logger.NewNoOpLogger(),
		placeholder: config.DefaultPlaceholderName,
		extension:   config.DefaultExtension,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Run initializes audio and loads the plugin called name. Load failures are
// reported through the status; the returned error only concerns the audio
// device, which is not fatal.
func (h *Host) Run(name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.name = name
	h.status = StatusNoPlugin
	h.lastError = ""

	audioErr := h.bridge.Initialize()
	if audioErr != nil {
		h.audioError = audioErr.Error()
	}

	switch {
	case strings.TrimSpace(name) == "":
		h.log.Error("could not determine plugin name")
		h.lastError = "Could not determine plugin name from executable."

		return audioErr
	case strings.EqualFold(name, h.placeholder):
		h.log.Info("running under the placeholder name, waiting for rename", "name", name)

		return audioErr
	}

	h.log.Info("running as renamed plugin host", "name", name)

	inst, err := h.loader.LoadPlugin(name)
	if err != nil || inst == nil {
		h.status = StatusLoadFailed
		h.lastError = h.loader.LastError()

		if h.lastError == "" {
			h.lastError = fmt.Sprintf("Could not find or load %q", name)
		}

		return audioErr
	}

	h.instance = inst
	h.bridge.SetProcessor(inst)
	h.status = StatusLoadedNoEditor

	if inst.HasVisualInterface() {
		h.openEditor(inst)
	} else {
		h.log.Info("plugin has no editor interface", "name", inst.Name())
	}

	if err := h.bridge.Start(); err != nil {
		h.audioError = err.Error()

		return errors.CombineErrors(audioErr, err)
	}

	return audioErr
}

// openEditor creates the visual interface. Callers hold mu.
func (h *Host) openEditor(inst plugin.Instance) {
	editor := inst.CreateVisualInterface()
	if editor == nil {
		h.log.Info("plugin reported an editor but created none", "name", inst.Name())

		return
	}

	width, height := editor.Size()
	if width <= 0 {
		width = plugin.DefaultEditorWidth
	}

	if height <= 0 {
		height = plugin.DefaultEditorHeight
	}

	h.editor, h.editorW, h.editorH = editor, width, height
	h.status = StatusLoadedWithEditor

	h.log.Info("editor created", "name", inst.Name(), "width", width, "height", height)
}

// Status returns the load status.
func (h *Host) Status() Status {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.status
}

// Message returns the full status line, including the load error.
func (h *Host) Message() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.message()
}

func (h *Host) message() string {
	switch h.status {
	case StatusNoPlugin:
		msg := fmt.Sprintf("%s (e.g., 'MyPlugin.app' to load 'MyPlugin%s')", h.status.Message(), h.extension)
		if h.lastError != "" {
			msg = h.lastError + "\n" + msg
		}

		return msg
	case StatusLoadFailed:
		return h.status.Message() + ": " + h.lastError
	default:
		return h.status.Message()
	}
}

// Snapshot returns the current state for display.
func (h *Host) Snapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	snap := Snapshot{
		Name:         h.name,
		Status:       h.status,
		Message:      h.message(),
		EditorWidth:  h.editorW,
		EditorHeight: h.editorH,
		AudioState:   h.bridge.State(),
		AudioError:   h.audioError,
	}

	if h.instance != nil {
		snap.PluginName = h.instance.Name()
	}

	snap.Audio, snap.AudioActive = h.bridge.Config()

	return snap
}

// Close tears everything down: audio stops, the editor closes, the processor
// is released and closed, then the format and finally the device.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}

	h.closed = true

	var errs []error

	h.bridge.Stop()

	if h.editor != nil {
		if err := h.editor.Close(); err != nil {
			errs = append(errs, errors.Wrap(err, "failed to close editor"))
		}

		h.editor = nil
	}

	h.bridge.SetProcessor(nil)

	if h.instance != nil {
		if err := h.instance.Close(); err != nil {
			errs = append(errs, errors.Wrap(err, "failed to close plugin instance"))
		}

		h.instance = nil
	}

	if err := h.loader.Close(); err != nil {
		errs = append(errs, err)
	}

	if err := h.bridge.Close(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		h.log.Error("teardown finished with errors", "errors", len(errs))
	}

	return errors.Join(errs...)
}
