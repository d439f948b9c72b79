// Package pixbuf holds decoded images as flat sample buffers and the
// channel-layout conversions the encoders need.
package pixbuf

import (
	"errors"
	"fmt"
)

// MaxSamples caps the number of samples a single buffer may hold (1 GiB).
const MaxSamples = 1 << 30

// ErrResourceExhausted is returned when a buffer cannot be allocated.
var ErrResourceExhausted = errors.New("pixbuf: resource exhausted")

// Owner records which allocator produced a buffer's samples and therefore
// how Release must dispose of them.
type Owner int

const (
	// Native samples come from the package pool.
	Native Owner = iota
	// Foreign samples alias memory owned by an external decoder.
	Foreign
)

func (o Owner) String() string {
	switch o {
	case Native:
		return "native"
	case Foreign:
		return "foreign"
	}
	return fmt.Sprintf("Owner(%d)", int(o))
}

// Buffer is a decoded image: Width*Height pixels of Channels interleaved
// 8-bit samples, row-major with no padding.
type Buffer struct {
	Width    int
	Height   int
	Channels int // 1 = gray, 3 = RGB, 4 = RGBA
	Samples  []byte
	Owner    Owner

	released bool
}

// SampleCount returns width*height*channels, or an error when the product
// overflows or exceeds MaxSamples.
func SampleCount(width, height, channels int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("pixbuf: invalid dimensions %dx%d", width, height)
	}
	if !validChannels(channels) {
		return 0, fmt.Errorf("pixbuf: invalid channel count %d", channels)
	}
	if width > MaxSamples/height || width*height > MaxSamples/channels {
		return 0, fmt.Errorf("%w: %dx%dx%d samples", ErrResourceExhausted, width, height, channels)
	}
	return width * height * channels, nil
}

// New allocates a zeroed Native buffer.
func New(width, height, channels int) (*Buffer, error) {
	n, err := SampleCount(width, height, channels)
	if err != nil {
		return nil, err
	}
	return &Buffer{
		Width:    width,
		Height:   height,
		Channels: channels,
		Samples:  getSamples(n),
		Owner:    Native,
	}, nil
}

// Wrap builds a Foreign buffer around samples owned by someone else.
// It panics if len(samples) does not match the dimensions.
func Wrap(width, height, channels int, samples []byte) *Buffer {
	b := &Buffer{
		Width:    width,
		Height:   height,
		Channels: channels,
		Samples:  samples,
		Owner:    Foreign,
	}
	b.mustValidate()
	return b
}

// Validate reports whether the buffer satisfies its size invariant.
func (b *Buffer) Validate() error {
	n, err := SampleCount(b.Width, b.Height, b.Channels)
	if err != nil {
		return err
	}
	if len(b.Samples) != n {
		return fmt.Errorf("pixbuf: %dx%dx%d buffer has %d samples, want %d",
			b.Width, b.Height, b.Channels, len(b.Samples), n)
	}
	return nil
}

func (b *Buffer) mustValidate() {
	if err := b.Validate(); err != nil {
		panic(err)
	}
}

// Pixels returns the number of pixels in the buffer.
func (b *Buffer) Pixels() int { return b.Width * b.Height }

// Released reports whether Release has been called.
func (b *Buffer) Released() bool { return b.released }

// Release disposes of the samples according to the ownership tag.
// Calling it more than once is a no-op.
func (b *Buffer) Release() {
	if b == nil || b.released {
		return
	}
	switch b.Owner {
	case Native:
		putSamples(b.Samples)
	case Foreign:
		// the external decoder's memory is reclaimed by the GC once unreferenced
	default:
		panic(fmt.Sprintf("pixbuf: release of buffer with unknown owner %v", b.Owner))
	}
	b.Samples = nil
	b.released = true
}

func validChannels(c int) bool {
	return c == 1 || c == 3 || c == 4
}
