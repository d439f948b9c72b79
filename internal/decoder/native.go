package decoder

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	gopnm "github.com/jbuchbinder/gopnm"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/AnyUserName/imgconv-cli/internal/pixbuf"
)

// sniffLen is the number of header bytes inspected to pick a decoder.
const sniffLen = 16

// format is one container the native decoder understands. '?' in magic
// matches any byte.
type format struct {
	name   string
	magic  string
	decode func(io.Reader) (image.Image, error)
	config func(io.Reader) (image.Config, error)
}

// nativeFormats lists the containers compiled into the primary decoder.
// WebP is handled by the fallback decoder instead.
var nativeFormats = []format{
	{"png", "\x89PNG\r\n\x1a\n", png.Decode, png.DecodeConfig},
	{"jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig},
	{"gif", "GIF87a", gif.Decode, gif.DecodeConfig},
	{"gif", "GIF89a", gif.Decode, gif.DecodeConfig},
	{"bmp", "BM????\x00\x00\x00\x00", bmp.Decode, bmp.DecodeConfig},
	{"tiff", "II\x2a\x00", tiff.Decode, tiff.DecodeConfig},
	{"tiff", "MM\x00\x2a", tiff.Decode, tiff.DecodeConfig},
	{"pnm", "P1", gopnm.Decode, gopnm.DecodeConfig},
	{"pnm", "P2", gopnm.Decode, gopnm.DecodeConfig},
	{"pnm", "P3", gopnm.Decode, gopnm.DecodeConfig},
	{"pnm", "P4", gopnm.Decode, gopnm.DecodeConfig},
	{"pnm", "P5", gopnm.Decode, gopnm.DecodeConfig},
	{"pnm", "P6", gopnm.Decode, gopnm.DecodeConfig},
}

func match(magic string, b []byte) bool {
	if len(magic) > len(b) {
		return false
	}
	for i, c := range []byte(magic) {
		if c != b[i] && c != '?' {
			return false
		}
	}
	return true
}

func sniff(header []byte) (format, bool) {
	for _, f := range nativeFormats {
		if match(f.magic, header) {
			return f, true
		}
	}
	return format{}, false
}

// Native decodes the formats in nativeFormats and keeps the image's own
// channel count. Its buffers are Native-owned.
type Native struct{}

func (d *Native) Name() string { return "native" }

func (d *Native) Decode(path string) (*pixbuf.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrIO, path, err)
	}
	defer f.Close()

	header, err := bufio.NewReaderSize(f, sniffLen).Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: read %s: %v", ErrIO, path, err)
	}
	fmtInfo, ok := sniff(header)
	if !ok {
		return nil, ErrUnknownFormat
	}

	if err := rewind(f); err != nil {
		return nil, err
	}
	cfg, err := fmtInfo.config(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s header: %w", fmtInfo.name, err)
	}
	if _, err := pixbuf.SampleCount(cfg.Width, cfg.Height, 4); err != nil {
		return nil, err
	}

	if err := rewind(f); err != nil {
		return nil, err
	}
	img, err := fmtInfo.decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fmtInfo.name, err)
	}
	return pixbuf.FromImage(img)
}

func rewind(f *os.File) error {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek %s: %v", ErrIO, f.Name(), err)
	}
	return nil
}
