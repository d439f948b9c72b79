package pnm

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	gopnm "github.com/jbuchbinder/gopnm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnyUserName/imgconv-cli/internal/pixbuf"
)

func encode(t *testing.T, b *pixbuf.Buffer) (Subformat, []byte) {
	t.Helper()
	var buf bytes.Buffer
	sub, err := Encode(&buf, b)
	require.NoError(t, err)
	return sub, buf.Bytes()
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		buf  *pixbuf.Buffer
		want Subformat
	}{
		{"gray bitonal", pixbuf.Wrap(3, 1, 1, []byte{0, 255, 0}), Bitmap},
		{"gray midtones", pixbuf.Wrap(2, 1, 1, []byte{0, 17}), Graymap},
		{"rgb bitonal", pixbuf.Wrap(2, 1, 3, []byte{255, 255, 255, 0, 0, 0}), Bitmap},
		{"rgb equal channels", pixbuf.Wrap(2, 1, 3, []byte{9, 9, 9, 200, 200, 200}), Graymap},
		{"rgb colour", pixbuf.Wrap(2, 1, 3, []byte{9, 9, 9, 200, 201, 200}), Pixmap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.buf).Subformat())
		})
	}
}

func TestClassifyBinaryRequiresGrayscale(t *testing.T) {
	c := Classify(pixbuf.Wrap(1, 1, 3, []byte{0, 255, 0}))
	assert.False(t, c.Grayscale)
	assert.False(t, c.Binary)
}

func TestEncodeBitmapNinePixels(t *testing.T) {
	b := pixbuf.Wrap(9, 1, 1, []byte{0, 255, 0, 255, 0, 255, 0, 255, 0})

	sub, out := encode(t, b)
	assert.Equal(t, Bitmap, sub)

	header := []byte("P4\n9 1\n")
	require.True(t, bytes.HasPrefix(out, header))
	data := out[len(header):]
	require.Len(t, data, 2)
	assert.Equal(t, byte(0b10101010), data[0])
	assert.Equal(t, byte(0b10000000), data[1])
	assert.Zero(t, data[1]&0x7f, "padding bits must be zero")
}

func TestEncodeBitmapAllBlackRGB(t *testing.T) {
	b := pixbuf.Wrap(2, 2, 3, make([]byte, 12))

	sub, out := encode(t, b)
	assert.Equal(t, Bitmap, sub)
	assert.Equal(t, append([]byte("P4\n2 2\n"), 0xf0), out)
}

func TestEncodeBitmapPacksAcrossRows(t *testing.T) {
	// 3x3 = 9 pixels, packed contiguously rather than per row
	b := pixbuf.Wrap(3, 3, 1, []byte{
		0, 0, 0,
		255, 255, 255,
		0, 255, 0,
	})
	_, out := encode(t, b)
	data := out[len("P4\n3 3\n"):]
	assert.Equal(t, []byte{0b11100010, 0b10000000}, data)
}

func TestEncodeGraymap(t *testing.T) {
	b := pixbuf.Wrap(3, 1, 3, []byte{10, 10, 10, 20, 20, 20, 255, 255, 255})

	sub, out := encode(t, b)
	assert.Equal(t, Graymap, sub)
	assert.Equal(t, append([]byte("P5\n3 1\n255\n"), 10, 20, 255), out)
}

func TestEncodePixmapDropsAlpha(t *testing.T) {
	b := pixbuf.Wrap(2, 1, 4, []byte{1, 2, 3, 0, 4, 5, 6, 255})

	sub, out := encode(t, b)
	assert.Equal(t, Pixmap, sub)
	assert.Equal(t, append([]byte("P6\n2 1\n255\n"), 1, 2, 3, 4, 5, 6), out)
}

func TestEncodeGraymapDecodes(t *testing.T) {
	w, h := 4, 3
	samples := make([]byte, w*h)
	for i := range samples {
		samples[i] = byte(i * 20)
	}
	_, out := encode(t, pixbuf.Wrap(w, h, 1, samples))

	img, err := gopnm.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, w, img.Bounds().Dx())
	assert.Equal(t, h, img.Bounds().Dy())
	r, _, _, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(samples[w+1])*0x101, r)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pnm")

	sub, err := WriteFile(path, pixbuf.Wrap(1, 1, 3, []byte{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, Pixmap, sub)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, append([]byte("P6\n1 1\n255\n"), 1, 2, 3), data)
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.pnm")
	_, err := WriteFile(path, pixbuf.Wrap(1, 1, 1, []byte{0}))
	assert.Error(t, err)
}
