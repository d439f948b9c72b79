// Package decoder turns image files into pixel buffers. A Chain tries the
// native decoder first and falls back to libwebp, which covers the one
// container the native decoder set lacks.
package decoder

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/AnyUserName/imgconv-cli/internal/pixbuf"
)

var (
	// ErrDecodeFailed means neither the primary nor the fallback decoder
	// accepted the input.
	ErrDecodeFailed = errors.New("decode failed")

	// ErrIO wraps file open/read failures.
	ErrIO = errors.New("i/o error")

	// ErrUnknownFormat is reported by the native decoder when no header
	// signature matches.
	ErrUnknownFormat = errors.New("unknown image type")
)

// Decoder produces a pixel buffer from a file path.
type Decoder interface {
	Name() string
	Decode(path string) (*pixbuf.Buffer, error)
}

// Result is a decoded buffer plus the decoder that produced it.
type Result struct {
	Buffer  *pixbuf.Buffer
	Decoder string
	// PrimaryErr is the primary decoder's failure when the fallback ran.
	PrimaryErr error
}

// Chain runs Primary, then Fallback when Primary fails.
type Chain struct {
	Primary  Decoder
	Fallback Decoder
	Logger   *log.Logger
}

// NewChain returns the default native -> webp chain.
func NewChain(logger *log.Logger) *Chain {
	return &Chain{
		Primary:  &Native{},
		Fallback: &WebP{},
		Logger:   logger,
	}
}

func (c *Chain) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

// Decode returns the first successful decode. The caller owns the buffer
// and must hand it back through Release.
func (c *Chain) Decode(path string) (*Result, error) {
	buf, err := c.Primary.Decode(path)
	if err == nil {
		c.logger().Debug("decoded", "decoder", c.Primary.Name(),
			"size", fmt.Sprintf("%dx%d", buf.Width, buf.Height), "channels", buf.Channels)
		return &Result{Buffer: buf, Decoder: c.Primary.Name()}, nil
	}
	c.logger().Warn("primary decoder failed", "decoder", c.Primary.Name(), "reason", err)

	if c.Fallback == nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeFailed, path, err)
	}
	fbuf, ferr := c.Fallback.Decode(path)
	if ferr != nil {
		return nil, fmt.Errorf("%w: %s: %s: %v; %s: %v", ErrDecodeFailed, path,
			c.Primary.Name(), err, c.Fallback.Name(), ferr)
	}
	c.logger().Debug("decoded", "decoder", c.Fallback.Name(),
		"size", fmt.Sprintf("%dx%d", fbuf.Width, fbuf.Height), "channels", fbuf.Channels)
	return &Result{Buffer: fbuf, Decoder: c.Fallback.Name(), PrimaryErr: err}, nil
}

// Release frees a buffer obtained from Decode. The buffer's ownership tag
// decides how its samples are disposed of.
func (c *Chain) Release(b *pixbuf.Buffer) {
	if b == nil || b.Released() {
		return
	}
	c.logger().Debug("release", "owner", b.Owner, "samples", len(b.Samples))
	b.Release()
}
