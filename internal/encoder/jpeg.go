package encoder

import (
	"bytes"
	"image/jpeg"

	"github.com/AnyUserName/imgconv-cli/internal/pixbuf"
	"github.com/AnyUserName/imgconv-cli/internal/profile"
)

// JPEGEncoder encodes to baseline JPEG at the fixed profile quality.
// Four-channel buffers lose their alpha channel before encoding.
type JPEGEncoder struct{}

func (e *JPEGEncoder) Format() string    { return "jpeg" }
func (e *JPEGEncoder) Extension() string { return "jpg" }

func (e *JPEGEncoder) Encode(b *pixbuf.Buffer) ([]byte, error) {
	if b.Channels == 4 {
		rgb, err := pixbuf.ReduceToRGB(b)
		if err != nil {
			return nil, err
		}
		defer rgb.Release()
		b = rgb
	}

	img, err := pixbuf.ToImage(b)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(b.Pixels() / 4)

	err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: profile.JPEGQuality()})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
