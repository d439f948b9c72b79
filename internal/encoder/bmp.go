package encoder

import (
	"bytes"

	"golang.org/x/image/bmp"

	"github.com/AnyUserName/imgconv-cli/internal/pixbuf"
)

// BMPEncoder writes 8-bit gray, 24-bit or 32-bit BMP depending on the
// buffer's channels.
type BMPEncoder struct{}

func (e *BMPEncoder) Format() string    { return "bmp" }
func (e *BMPEncoder) Extension() string { return "bmp" }

func (e *BMPEncoder) Encode(b *pixbuf.Buffer) ([]byte, error) {
	img, err := pixbuf.ToImage(b)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(54 + 1024 + len(b.Samples))
	if err := bmp.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
