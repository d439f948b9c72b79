package decoder

import (
	"fmt"
	"os"

	"github.com/chai2010/webp"

	"github.com/AnyUserName/imgconv-cli/internal/pixbuf"
)

// WebP decodes WebP files with libwebp, always to four channels so alpha
// survives. Its buffers alias libwebp's output and are Foreign-owned.
type WebP struct{}

func (d *WebP) Name() string { return "webp" }

func (d *WebP) Decode(path string) (*pixbuf.Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	w, h, _, err := webp.GetInfo(data)
	if err != nil {
		return nil, fmt.Errorf("webp probe: %w", err)
	}
	if _, err := pixbuf.SampleCount(w, h, 4); err != nil {
		return nil, err
	}

	m, err := webp.DecodeRGBA(data)
	if err != nil {
		return nil, fmt.Errorf("webp: %w", err)
	}
	b := m.Bounds()
	if b.Dx() != w || b.Dy() != h {
		return nil, fmt.Errorf("webp: decoded %dx%d, header says %dx%d", b.Dx(), b.Dy(), w, h)
	}

	pix := m.Pix
	if m.Stride != w*4 {
		pix = make([]byte, w*h*4)
		for y := 0; y < h; y++ {
			copy(pix[y*w*4:(y+1)*w*4], m.Pix[y*m.Stride:])
		}
	}
	return pixbuf.Wrap(w, h, 4, pix[:w*h*4]), nil
}
