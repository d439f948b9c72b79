// Package pnm writes pixel buffers as binary Portable Any-Map images,
// choosing the narrowest subformat (P4 bitmap, P5 graymap, P6 pixmap)
// that represents the buffer without loss.
package pnm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/AnyUserName/imgconv-cli/internal/pixbuf"
)

// Subformat identifies a binary PNM variant.
type Subformat int

const (
	Bitmap  Subformat = iota // P4, 1 bit per pixel
	Graymap                  // P5, 1 byte per pixel
	Pixmap                   // P6, 3 bytes per pixel
)

// Magic returns the two-byte magic number of the subformat.
func (s Subformat) Magic() string {
	switch s {
	case Bitmap:
		return "P4"
	case Graymap:
		return "P5"
	case Pixmap:
		return "P6"
	}
	return fmt.Sprintf("Subformat(%d)", int(s))
}

func (s Subformat) String() string { return s.Magic() }

// maxval is the sample ceiling written for P5 and P6.
const maxval = 255

// inkThreshold splits bitonal samples: values below it are ink (black).
const inkThreshold = 128

// Classification is the result of scanning a buffer.
type Classification struct {
	Grayscale bool
	Binary    bool
}

// Subformat returns the most restrictive subformat the classification allows.
func (c Classification) Subformat() Subformat {
	switch {
	case c.Binary:
		return Bitmap
	case c.Grayscale:
		return Graymap
	default:
		return Pixmap
	}
}

// Classify scans every pixel of b (1 or 3 channels) and reports whether it
// is grayscale and, if so, whether it is bitonal.
func Classify(b *pixbuf.Buffer) Classification {
	c := Classification{Grayscale: isGrayscale(b)}
	if c.Grayscale {
		c.Binary = isBinary(b)
	}
	return c
}

func isGrayscale(b *pixbuf.Buffer) bool {
	if b.Channels == 1 {
		return true
	}
	s := b.Samples
	for i := 0; i < len(s); i += b.Channels {
		if s[i] != s[i+1] || s[i] != s[i+2] {
			return false
		}
	}
	return true
}

// isBinary checks the representative gray value of each pixel: the sole
// channel, or R for RGB buffers.
func isBinary(b *pixbuf.Buffer) bool {
	s := b.Samples
	for i := 0; i < len(s); i += b.Channels {
		if v := s[i]; v != 0 && v != 255 {
			return false
		}
	}
	return true
}

// Encode writes b to w in the subformat chosen by Classify. Four-channel
// buffers are reduced to RGB first since PNM has no alpha variant.
func Encode(w io.Writer, b *pixbuf.Buffer) (Subformat, error) {
	if b.Channels == 4 {
		rgb, err := pixbuf.ReduceToRGB(b)
		if err != nil {
			return 0, err
		}
		defer rgb.Release()
		b = rgb
	}
	if err := b.Validate(); err != nil {
		panic(err)
	}

	sub := Classify(b).Subformat()
	bw := bufio.NewWriter(w)

	var err error
	switch sub {
	case Bitmap:
		_, err = fmt.Fprintf(bw, "%s\n%d %d\n", sub.Magic(), b.Width, b.Height)
		if err == nil {
			_, err = bw.Write(packBits(b))
		}
	case Graymap:
		_, err = fmt.Fprintf(bw, "%s\n%d %d\n%d\n", sub.Magic(), b.Width, b.Height, maxval)
		if err == nil {
			err = writeGray(bw, b)
		}
	case Pixmap:
		_, err = fmt.Fprintf(bw, "%s\n%d %d\n%d\n", sub.Magic(), b.Width, b.Height, maxval)
		if err == nil {
			_, err = bw.Write(b.Samples)
		}
	}
	if err != nil {
		return sub, err
	}
	return sub, bw.Flush()
}

// packBits packs all pixels contiguously, eight per byte, MSB first.
// Bit 1 marks ink; the trailing partial byte is zero padded.
func packBits(b *pixbuf.Buffer) []byte {
	n := b.Pixels()
	out := make([]byte, (n+7)/8)
	for p := 0; p < n; p++ {
		if b.Samples[p*b.Channels] < inkThreshold {
			out[p>>3] |= 0x80 >> uint(p&7)
		}
	}
	return out
}

func writeGray(w io.Writer, b *pixbuf.Buffer) error {
	if b.Channels == 1 {
		_, err := w.Write(b.Samples)
		return err
	}
	row := make([]byte, b.Width)
	for y := 0; y < b.Height; y++ {
		line := b.Samples[y*b.Width*b.Channels : (y+1)*b.Width*b.Channels]
		for x := range row {
			row[x] = line[x*b.Channels]
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile encodes b into a new file at path. The file is closed on every
// path and removed again if encoding fails.
func WriteFile(path string, b *pixbuf.Buffer) (sub Subformat, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	sub, err = Encode(f, b)
	if err != nil {
		return sub, fmt.Errorf("write %s: %w", path, err)
	}
	return sub, nil
}
