package audio

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"

	"github.com/towelWet/TowelHost/pkg/logger"
	"github.com/towelWet/TowelHost/pkg/plugin"
)

const (
	// DefaultChannels is used for the device and for any side a device
	// reports with zero channels.
	DefaultChannels = 2

	eventCapacity = 256
)

// ErrDeviceUnavailable is returned when the device cannot be opened or started.
var ErrDeviceUnavailable = errors.New("audio device unavailable")

// published wraps the processor visible to the realtime goroutine.
type published struct {
	p Processor
}

// Bridge moves audio between a Device and a Processor.
//
// Control methods are safe for concurrent use. Process runs on the device's
// realtime goroutine and never locks, logs or allocates, except to grow the
// working buffer when the device delivers a larger block than announced.
type Bridge struct {
	device   Device
	inputs   int
	outputs  int
	log      logger.Logger
	mu       sync.Mutex
	state    State
	current  Processor
	released bool // current has been released since it was last prepared
	closed   bool

	active   atomic.Pointer[published]
	inFlight atomic.Int32

	// buffer and events are touched only by AboutToStart, before callbacks
	// start, and by Process.
	buffer *plugin.AudioBuffer
	events *plugin.EventBuffer
}

// BridgeOption configures the Bridge.
type BridgeOption func(*Bridge)

// WithLogger sets the logger for the bridge.
func WithLogger(log logger.Logger) BridgeOption {
	return func(b *Bridge) {
		if log != nil {
			b.log = log
		}
	}
}

// WithChannels sets the channel counts requested when opening the device.
// Non-positive counts keep the stereo default.
func WithChannels(inputs, outputs int) BridgeOption {
	return func(b *Bridge) {
		if inputs > 0 {
			b.inputs = inputs
		}

		if outputs > 0 {
			b.outputs = outputs
		}
	}
}

// NewBridge creates a Bridge driving device. The bridge owns the device and
// closes it in Close.
func NewBridge(device Device, opts ...BridgeOption) *Bridge {
	b := &Bridge{
		device:  device,
		inputs:  DefaultChannels,
		outputs: DefaultChannels,
		log:     logger.NewNoOpLogger(),
		buffer:  plugin.NewAudioBuffer(0, 0),
		events:  plugin.NewEventBuffer(eventCapacity),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// State returns the lifecycle state.
func (b *Bridge) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state
}

// Config returns the device configuration, if the device reports one.
func (b *Bridge) Config() (Config, bool) {
	return b.device.Current()
}

// Initialize opens the device. Calling it again is a no-op. When opening
// fails the bridge is still initialized, without a device to run on.
func (b *Bridge) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != StateUninitialized {
		return nil
	}

	b.state = StateInitialized

	if err := b.device.Open(b.inputs, b.outputs); err != nil {
		b.log.Error("failed to open audio device", "error", err)

		return errors.Mark(errors.Wrap(err, ErrDeviceUnavailable.Error()), ErrDeviceUnavailable)
	}

	if cfg, ok := b.device.Current(); ok {
		b.log.Info("audio device opened",
			"sampleRate", cfg.SampleRate,
			"blockSize", cfg.BlockSize,
			"inputs", cfg.ActiveInputs,
			"outputs", cfg.ActiveOutputs,
		)
	}

	return nil
}

// Start registers the bridge with the device. It only has an effect when the
// bridge is initialized or stopped.
func (b *Bridge) Start() error {
	b.mu.Lock()
	startable := b.state == StateInitialized || b.state == StateStopped
	b.mu.Unlock()

	if !startable {
		return nil
	}

	// Register calls AboutToStart, which takes the lock.
	if err := b.device.Register(b); err != nil {
		b.log.Error("failed to start audio", "error", err)

		return errors.Mark(errors.Wrap(err, ErrDeviceUnavailable.Error()), ErrDeviceUnavailable)
	}

	b.mu.Lock()
	b.state = StateRunning
	b.mu.Unlock()

	b.log.Info("audio started")

	return nil
}

// Stop unregisters the bridge and waits until no callback is running. It is
// safe in any state.
func (b *Bridge) Stop() {
	b.device.Unregister(b)
	b.waitIdle()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateRunning {
		b.state = StateStopped
		b.log.Info("audio stopped")
	}
}

// SetProcessor replaces the processor. The previous one is released after
// any callback using it has returned, unless Stopped already released it.
// Release runs whether or not the processor was ever prepared. The new one is configured and prepared
// now when the device reports a configuration, otherwise in AboutToStart.
func (b *Bridge) SetProcessor(p Processor) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if p == b.current {
		return
	}

	old, oldReleased := b.current, b.released

	b.active.Store(nil)
	b.waitIdle()

	b.current, b.released = nil, false

	if old != nil && !oldReleased {
		old.Release()
	}

	if p == nil {
		return
	}

	b.current = p

	if b.state != StateUninitialized {
		if cfg, ok := b.device.Current(); ok {
			b.prepare(cfg)
		}
	}

	b.active.Store(&published{p: p})
}

// Processor returns the current processor.
//
//nolint:ireturn // returns what SetProcessor received
func (b *Bridge) Processor() Processor {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.current
}

// AboutToStart sizes the working buffer and prepares the processor for cfg.
func (b *Bridge) AboutToStart(cfg Config) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.buffer.Allocate(max(cfg.ActiveInputs, cfg.ActiveOutputs, DefaultChannels), cfg.BlockSize)

	if b.current != nil {
		b.prepare(cfg)
	}
}

// Stopped releases the current processor. A later SetProcessor does not
// release it again unless it was prepared in between.
func (b *Bridge) Stopped() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current != nil && !b.released {
		b.current.Release()
		b.released = true
	}
}

// prepare configures and prepares the current processor. Callers hold mu.
func (b *Bridge) prepare(cfg Config) {
	inputs, outputs := channelLayout(cfg)

	if err := b.current.Configure(inputs, outputs, cfg.SampleRate, cfg.BlockSize); err != nil {
		b.log.Error("processor rejected channel layout",
			"inputs", inputs, "outputs", outputs, "error", err)
	}

	b.current.Prepare(cfg.SampleRate, cfg.BlockSize)
	b.released = false

	b.log.Debug("processor prepared",
		"inputs", inputs,
		"outputs", outputs,
		"sampleRate", cfg.SampleRate,
		"blockSize", cfg.BlockSize,
	)
}

// channelLayout returns the active channel counts, or stereo on both sides
// when either side reports no channels.
func channelLayout(cfg Config) (inputs, outputs int) {
	if cfg.ActiveInputs <= 0 || cfg.ActiveOutputs <= 0 {
		return DefaultChannels, DefaultChannels
	}

	return cfg.ActiveInputs, cfg.ActiveOutputs
}

// Process runs one block through the processor. Without a processor the
// outputs are cleared and the inputs are not read.
func (b *Bridge) Process(inputs, outputs [][]float32, numSamples int) {
	b.inFlight.Add(1)
	defer b.inFlight.Add(-1)

	numSamples = max(numSamples, 0)

	active := b.active.Load()
	if active == nil {
		clearChannels(outputs, numSamples)

		return
	}

	channels := max(len(inputs), len(outputs))

	if !b.buffer.SetSize(channels, numSamples) {
		b.buffer.Allocate(channels, numSamples)
	}

	b.buffer.Clear()

	for ch, in := range inputs {
		if in != nil {
			copy(b.buffer.Channel(ch), in)
		}
	}

	b.events.Clear()
	active.p.ProcessBlock(b.buffer, b.events)

	for ch, out := range outputs {
		if out == nil {
			continue
		}

		out = out[:min(numSamples, len(out))]

		if ch < b.buffer.NumChannels() {
			copy(out, b.buffer.Channel(ch))
		} else {
			clear(out)
		}
	}
}

func clearChannels(channels [][]float32, numSamples int) {
	for _, ch := range channels {
		if ch != nil {
			clear(ch[:min(max(numSamples, 0), len(ch))])
		}
	}
}

// waitIdle blocks until no Process call is running.
func (b *Bridge) waitIdle() {
	for b.inFlight.Load() != 0 {
		runtime.Gosched()
	}
}

// Close stops the bridge and closes the device.
func (b *Bridge) Close() error {
	b.Stop()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}

	b.closed = true

	return errors.Wrap(b.device.Close(), "failed to close audio device")
}
