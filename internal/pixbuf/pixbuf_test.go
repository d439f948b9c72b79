package pixbuf

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgbBuffer(t *testing.T, w, h int) *Buffer {
	t.Helper()
	b, err := New(w, h, 3)
	require.NoError(t, err)
	for i := range b.Samples {
		b.Samples[i] = byte(i*7 + 3)
	}
	return b
}

func TestNewRejectsBadShapes(t *testing.T) {
	_, err := New(0, 4, 3)
	assert.Error(t, err)

	_, err = New(4, 4, 2)
	assert.Error(t, err)

	_, err = New(1<<20, 1<<20, 4)
	assert.ErrorIs(t, err, ErrResourceExhausted)
}

func TestExpandToRGBA(t *testing.T) {
	src := rgbBuffer(t, 5, 3)
	before := append([]byte(nil), src.Samples...)

	out, err := ExpandToRGBA(src)
	require.NoError(t, err)

	assert.Equal(t, 4, out.Channels)
	assert.Equal(t, src.Width, out.Width)
	assert.Equal(t, src.Height, out.Height)
	require.Len(t, out.Samples, 5*3*4)
	for p := 0; p < src.Pixels(); p++ {
		assert.Equal(t, src.Samples[p*3:p*3+3], out.Samples[p*4:p*4+3], "pixel %d", p)
		assert.Equal(t, byte(255), out.Samples[p*4+3], "alpha of pixel %d", p)
	}
	assert.Equal(t, before, src.Samples, "input must not be mutated")
}

func TestReduceExpandReproducesRGB(t *testing.T) {
	src := rgbBuffer(t, 7, 2)

	rgba, err := ExpandToRGBA(src)
	require.NoError(t, err)
	back, err := ReduceToRGB(rgba)
	require.NoError(t, err)

	assert.Equal(t, 3, back.Channels)
	assert.Equal(t, src.Samples, back.Samples)
}

func TestReduceToRGBDropsAlpha(t *testing.T) {
	b := Wrap(2, 1, 4, []byte{10, 20, 30, 0, 40, 50, 60, 128})

	out, err := ReduceToRGB(b)
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 20, 30, 40, 50, 60}, out.Samples)
}

func TestConvertersPanicOnWrongChannels(t *testing.T) {
	gray := Wrap(1, 1, 1, []byte{9})
	assert.Panics(t, func() { _, _ = ExpandToRGBA(gray) })
	assert.Panics(t, func() { _, _ = ReduceToRGB(gray) })
}

func TestWrapPanicsOnLengthMismatch(t *testing.T) {
	assert.Panics(t, func() { Wrap(2, 2, 3, make([]byte, 11)) })
}

func TestReleaseIsIdempotent(t *testing.T) {
	native := rgbBuffer(t, 2, 2)
	native.Release()
	assert.True(t, native.Released())
	assert.Nil(t, native.Samples)
	native.Release()

	foreign := Wrap(1, 1, 4, []byte{1, 2, 3, 4})
	foreign.Release()
	assert.True(t, foreign.Released())
	assert.Equal(t, Foreign, foreign.Owner)
}

func TestNativeChannels(t *testing.T) {
	r := image.Rect(0, 0, 2, 2)

	opaque := image.NewRGBA(r)
	for i := 3; i < len(opaque.Pix); i += 4 {
		opaque.Pix[i] = 255
	}
	translucent := image.NewRGBA(r)

	pal := image.NewPaletted(r, color.Palette{color.Black, color.White})
	palAlpha := image.NewPaletted(r, color.Palette{color.Transparent, color.White})

	tests := []struct {
		name string
		img  image.Image
		want int
	}{
		{"gray", image.NewGray(r), 1},
		{"gray16", image.NewGray16(r), 1},
		{"nrgba", image.NewNRGBA(r), 4},
		{"rgba opaque", opaque, 3},
		{"rgba translucent", translucent, 4},
		{"ycbcr", image.NewYCbCr(r, image.YCbCrSubsampleRatio444), 3},
		{"paletted", pal, 3},
		{"paletted alpha", palAlpha, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NativeChannels(tt.img))
		})
	}
}

func TestFromImageGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = byte(i * 40)
	}

	b, err := FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Channels)
	assert.Equal(t, img.Pix, b.Samples)
}

func TestFromImageRGB(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 4, G: 5, B: 6, A: 255})

	b, err := FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Channels)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, b.Samples)
}

func TestFromImageKeepsStraightAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	b, err := FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Channels)
	assert.Equal(t, []byte{200, 100, 50, 128}, b.Samples)
}

func TestToImage(t *testing.T) {
	gray := Wrap(2, 1, 1, []byte{7, 8})
	img, err := ToImage(gray)
	require.NoError(t, err)
	assert.IsType(t, &image.Gray{}, img)
	assert.Equal(t, color.Gray{Y: 8}, img.At(1, 0))

	rgb := Wrap(1, 1, 3, []byte{9, 8, 7})
	img, err = ToImage(rgb)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 9, G: 8, B: 7, A: 255}, img.At(0, 0))

	rgba := Wrap(1, 1, 4, []byte{9, 8, 7, 6})
	img, err = ToImage(rgba)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 9, G: 8, B: 7, A: 6}, img.At(0, 0))
}
