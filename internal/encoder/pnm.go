package encoder

import (
	"bytes"

	"github.com/AnyUserName/imgconv-cli/internal/pixbuf"
	"github.com/AnyUserName/imgconv-cli/internal/pnm"
)

// PNMEncoder writes the narrowest binary PNM subformat for the buffer.
type PNMEncoder struct{}

func (e *PNMEncoder) Format() string    { return "pnm" }
func (e *PNMEncoder) Extension() string { return "pnm" }

func (e *PNMEncoder) Encode(b *pixbuf.Buffer) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(16 + b.Pixels()*3)
	if _, err := pnm.Encode(&buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
