package encoder

import (
	"encoding/binary"
	"fmt"

	"github.com/AnyUserName/imgconv-cli/internal/pixbuf"
)

// TGA image types and descriptor bits.
const (
	tgaTrueColor  = 2
	tgaGrayscale  = 3
	tgaTopLeft    = 0x20
	tgaHeaderSize = 18
)

// TGAEncoder writes uncompressed Truevision TGA: 8-bit grayscale,
// 24-bit BGR or 32-bit BGRA with a top-left origin.
type TGAEncoder struct{}

func (e *TGAEncoder) Format() string    { return "tga" }
func (e *TGAEncoder) Extension() string { return "tga" }

func (e *TGAEncoder) Encode(b *pixbuf.Buffer) ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if b.Width > 0xffff || b.Height > 0xffff {
		return nil, fmt.Errorf("tga: %dx%d exceeds 65535x65535", b.Width, b.Height)
	}

	out := make([]byte, tgaHeaderSize+len(b.Samples))
	h := out[:tgaHeaderSize]
	h[2] = tgaTrueColor
	if b.Channels == 1 {
		h[2] = tgaGrayscale
	}
	binary.LittleEndian.PutUint16(h[12:], uint16(b.Width))
	binary.LittleEndian.PutUint16(h[14:], uint16(b.Height))
	h[16] = byte(b.Channels * 8)
	h[17] = tgaTopLeft
	if b.Channels == 4 {
		h[17] |= 8 // alpha bits
	}

	px := out[tgaHeaderSize:]
	if b.Channels == 1 {
		copy(px, b.Samples)
		return out, nil
	}
	c := b.Channels
	for i := 0; i < len(b.Samples); i += c {
		px[i+0] = b.Samples[i+2]
		px[i+1] = b.Samples[i+1]
		px[i+2] = b.Samples[i+0]
		if c == 4 {
			px[i+3] = b.Samples[i+3]
		}
	}
	return out, nil
}
