package encoder

import (
	"bytes"
	"image/png"

	"github.com/AnyUserName/imgconv-cli/internal/pixbuf"
	"github.com/AnyUserName/imgconv-cli/internal/profile"
)

// PNGEncoder encodes 1, 3 and 4 channel buffers to PNG as-is.
type PNGEncoder struct{}

func (e *PNGEncoder) Format() string    { return "png" }
func (e *PNGEncoder) Extension() string { return "png" }

func (e *PNGEncoder) Encode(b *pixbuf.Buffer) ([]byte, error) {
	img, err := pixbuf.ToImage(b)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(b.Samples) / 2)

	enc := &png.Encoder{CompressionLevel: profile.Get("png").Compression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
