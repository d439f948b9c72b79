package encoder

import (
	"errors"
	"fmt"
	"image"

	"github.com/chai2010/webp"

	"github.com/AnyUserName/imgconv-cli/internal/pixbuf"
	"github.com/AnyUserName/imgconv-cli/internal/profile"
)

// WebPEncoder encodes to lossy WebP through libwebp's RGBA entry point,
// which only accepts four-channel input.
type WebPEncoder struct{}

func (e *WebPEncoder) Format() string    { return "webp" }
func (e *WebPEncoder) Extension() string { return "webp" }

func (e *WebPEncoder) Encode(b *pixbuf.Buffer) ([]byte, error) {
	rgba, err := toRGBA(b)
	if err != nil {
		return nil, err
	}
	if rgba != b {
		defer rgba.Release()
	}

	img := &image.RGBA{
		Pix:    rgba.Samples,
		Stride: rgba.Width * 4,
		Rect:   image.Rect(0, 0, rgba.Width, rgba.Height),
	}
	data, err := webp.EncodeRGBA(img, profile.WebPQuality())
	if err != nil {
		return nil, fmt.Errorf("webp: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("webp: encoder returned no data")
	}
	return data, nil
}

// toRGBA returns b itself when it already has four channels, otherwise a
// new RGBA copy.
func toRGBA(b *pixbuf.Buffer) (*pixbuf.Buffer, error) {
	switch b.Channels {
	case 4:
		return b, nil
	case 3:
		return pixbuf.ExpandToRGBA(b)
	}

	// gray: replicate into RGB, then append alpha
	out, err := pixbuf.New(b.Width, b.Height, 4)
	if err != nil {
		return nil, err
	}
	for i, v := range b.Samples {
		out.Samples[i*4+0] = v
		out.Samples[i*4+1] = v
		out.Samples[i*4+2] = v
		out.Samples[i*4+3] = 255
	}
	return out, nil
}
