package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
)

// ErrDeviceNotOpen is returned when registering with a device that is not open.
var ErrDeviceNotOpen = errors.New("device is not open")

// NullDevice is a software device driven by a clock. Inputs carry silence
// and outputs are discarded.
type NullDevice struct {
	mu         sync.Mutex
	sampleRate float64
	blockSize  int
	cfg        Config
	open       bool
	cb         Callback
	stop       chan struct{}
	done       chan struct{}
	blocks     atomic.Uint64
}

// NewNullDevice creates a device running at sampleRate with blockSize frames
// per block.
func NewNullDevice(sampleRate float64, blockSize int) *NullDevice {
	return &NullDevice{sampleRate: sampleRate, blockSize: blockSize}
}

// Open opens the device with the requested channel counts.
func (d *NullDevice) Open(inputs, outputs int) error {
	if d.sampleRate <= 0 || d.blockSize <= 0 {
		return errors.Newf("invalid device settings: %v Hz, %d frames", d.sampleRate, d.blockSize)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.cfg = Config{
		SampleRate:    d.sampleRate,
		BlockSize:     d.blockSize,
		ActiveInputs:  max(inputs, 0),
		ActiveOutputs: max(outputs, 0),
	}
	d.open = true

	return nil
}

// Current returns the configuration while the device is open.
func (d *NullDevice) Current() (Config, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.cfg, d.open
}

// Register starts the clock for cb, replacing any registered callback.
func (d *NullDevice) Register(cb Callback) error {
	if cb == nil {
		return errors.New("callback is required")
	}

	d.mu.Lock()
	open, registered := d.open, d.cb
	d.mu.Unlock()

	if !open {
		return ErrDeviceNotOpen
	}

	if registered == cb {
		return nil
	}

	if registered != nil {
		d.Unregister(registered)
	}

	d.mu.Lock()
	cfg := d.cfg
	d.mu.Unlock()

	cb.AboutToStart(cfg)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.cb = cb
	d.stop = make(chan struct{})
	d.done = make(chan struct{})

	go d.run(cb, cfg, d.stop, d.done)

	return nil
}

// run delivers blocks to cb until stop is closed.
func (d *NullDevice) run(cb Callback, cfg Config, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	inputs := makeChannels(cfg.ActiveInputs, cfg.BlockSize)
	outputs := makeChannels(cfg.ActiveOutputs, cfg.BlockSize)

	period := cfg.BlockDuration()
	if period <= 0 {
		period = time.Millisecond
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			for _, in := range inputs {
				clear(in)
			}

			cb.Process(inputs, outputs, cfg.BlockSize)
			d.blocks.Add(1)
		}
	}
}

func makeChannels(channels, samples int) [][]float32 {
	data := make([]float32, channels*samples)
	out := make([][]float32, channels)

	for ch := range out {
		out[ch] = data[ch*samples : (ch+1)*samples : (ch+1)*samples]
	}

	return out
}

// Unregister stops the clock if cb is registered and waits for the last
// block to finish before calling cb.Stopped.
func (d *NullDevice) Unregister(cb Callback) {
	d.mu.Lock()

	if cb == nil || d.cb != cb {
		d.mu.Unlock()

		return
	}

	stop, done := d.stop, d.done
	d.cb, d.stop, d.done = nil, nil, nil
	d.mu.Unlock()

	close(stop)
	<-done

	cb.Stopped()
}

// Blocks returns how many blocks were delivered since the device was created.
func (d *NullDevice) Blocks() uint64 {
	return d.blocks.Load()
}

// Close unregisters the callback and closes the device.
func (d *NullDevice) Close() error {
	d.mu.Lock()
	cb := d.cb
	d.mu.Unlock()

	d.Unregister(cb)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.open = false

	return nil
}
