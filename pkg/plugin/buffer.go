package plugin

// AudioBuffer is a channel-major block of float32 samples backed by a single
// allocation. Resizing within capacity never allocates.
type AudioBuffer struct {
	data        []float32
	channels    [][]float32
	numChannels int
	numSamples  int
	maxSamples  int
}

// NewAudioBuffer allocates a buffer able to hold channels × samples.
func NewAudioBuffer(channels, samples int) *AudioBuffer {
	b := &AudioBuffer{}
	b.Allocate(channels, samples)

	return b
}

// Allocate replaces the backing storage with room for channels × samples and
// sets the active size to the same. Not for the realtime goroutine.
func (b *AudioBuffer) Allocate(channels, samples int) {
	channels = max(channels, 0)
	samples = max(samples, 0)

	b.data = make([]float32, channels*samples)
	b.channels = make([][]float32, channels)
	b.maxSamples = samples

	for ch := range b.channels {
		b.channels[ch] = b.data[ch*samples : (ch+1)*samples : (ch+1)*samples]
	}

	b.numChannels = channels
	b.numSamples = samples
}

// Fits reports whether channels × samples fits without reallocating.
func (b *AudioBuffer) Fits(channels, samples int) bool {
	return channels <= len(b.channels) && samples <= b.maxSamples
}

// SetSize changes the active size without allocating.
// It returns false and leaves the buffer unchanged when the size does not fit.
func (b *AudioBuffer) SetSize(channels, samples int) bool {
	if channels < 0 || samples < 0 || !b.Fits(channels, samples) {
		return false
	}

	b.numChannels = channels
	b.numSamples = samples

	return true
}

// NumChannels returns the active channel count.
func (b *AudioBuffer) NumChannels() int { return b.numChannels }

// NumSamples returns the active block length.
func (b *AudioBuffer) NumSamples() int { return b.numSamples }

// Channel returns the active samples of channel ch.
func (b *AudioBuffer) Channel(ch int) []float32 {
	return b.channels[ch][:b.numSamples]
}

// Clear zeroes the active region.
func (b *AudioBuffer) Clear() {
	for ch := range b.numChannels {
		clear(b.channels[ch][:b.numSamples])
	}
}
