package pixbuf

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// NativeChannels returns the channel count a decoded image carries in its
// own colour model: 1 for gray, 4 when the model has an alpha channel that
// is in use (or is always present, as with NRGBA), 3 otherwise.
func NativeChannels(img image.Image) int {
	switch src := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.NRGBA, *image.NRGBA64:
		return 4
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.Paletted:
		for _, c := range src.Palette {
			if _, _, _, a := c.RGBA(); a < 0xffff {
				return 4
			}
		}
		return 3
	case *image.RGBA:
		for i := 3; i < len(src.Pix); i += 4 {
			if src.Pix[i] < 255 {
				return 4
			}
		}
		return 3
	default:
		if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
			return 3
		}
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if _, _, _, a := img.At(x, y).RGBA(); a < 0xffff {
					return 4
				}
			}
		}
		return 3
	}
}

// FromImage copies img into a Native buffer with its native channel count.
// Colour images are normalised to straight-alpha NRGBA first.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	channels := NativeChannels(img)
	out, err := New(bounds.Dx(), bounds.Dy(), channels)
	if err != nil {
		return nil, err
	}

	if channels == 1 {
		fillGray(out, img)
		return out, nil
	}

	nrgba := imaging.Clone(img)
	if channels == 4 {
		copy(out.Samples, nrgba.Pix)
		return out, nil
	}
	dst := out.Samples
	for i, j := 0, 0; i < len(nrgba.Pix); i, j = i+4, j+3 {
		dst[j+0] = nrgba.Pix[i+0]
		dst[j+1] = nrgba.Pix[i+1]
		dst[j+2] = nrgba.Pix[i+2]
	}
	return out, nil
}

func fillGray(out *Buffer, img image.Image) {
	b := img.Bounds()
	w := b.Dx()
	if g, ok := img.(*image.Gray); ok {
		for y := 0; y < b.Dy(); y++ {
			off := g.PixOffset(b.Min.X, b.Min.Y+y)
			copy(out.Samples[y*w:(y+1)*w], g.Pix[off:off+w])
		}
		return
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Samples[i] = color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			i++
		}
	}
}

// ToImage exposes b as an image.Image for the standard encoders.
// One-channel and four-channel buffers are aliased, not copied; a
// three-channel buffer is expanded into a fresh opaque NRGBA image.
func ToImage(b *Buffer) (image.Image, error) {
	b.mustValidate()
	rect := image.Rect(0, 0, b.Width, b.Height)
	switch b.Channels {
	case 1:
		return &image.Gray{Pix: b.Samples, Stride: b.Width, Rect: rect}, nil
	case 3:
		rgba, err := ExpandToRGBA(b)
		if err != nil {
			return nil, err
		}
		return &image.NRGBA{Pix: rgba.Samples, Stride: b.Width * 4, Rect: rect}, nil
	case 4:
		return &image.NRGBA{Pix: b.Samples, Stride: b.Width * 4, Rect: rect}, nil
	}
	panic("unreachable")
}
