package pixbuf

import "fmt"

// ExpandToRGBA returns a new 4-channel buffer holding the RGB samples of b
// followed by an opaque alpha of 255. b must have 3 channels.
func ExpandToRGBA(b *Buffer) (*Buffer, error) {
	requireChannels(b, 3, "ExpandToRGBA")

	out, err := New(b.Width, b.Height, 4)
	if err != nil {
		return nil, err
	}
	src, dst := b.Samples, out.Samples
	for i, j := 0, 0; i < len(src); i, j = i+3, j+4 {
		dst[j+0] = src[i+0]
		dst[j+1] = src[i+1]
		dst[j+2] = src[i+2]
		dst[j+3] = 255
	}
	return out, nil
}

// ReduceToRGB returns a new 3-channel buffer holding the first three samples
// of every pixel of b. Alpha is discarded, not composited. b must have 4
// channels.
func ReduceToRGB(b *Buffer) (*Buffer, error) {
	requireChannels(b, 4, "ReduceToRGB")

	out, err := New(b.Width, b.Height, 3)
	if err != nil {
		return nil, err
	}
	src, dst := b.Samples, out.Samples
	for i, j := 0, 0; i < len(src); i, j = i+4, j+3 {
		dst[j+0] = src[i+0]
		dst[j+1] = src[i+1]
		dst[j+2] = src[i+2]
	}
	return out, nil
}

func requireChannels(b *Buffer, want int, op string) {
	if b.Channels != want {
		panic(fmt.Sprintf("pixbuf: %s needs %d channels, got %d", op, want, b.Channels))
	}
	b.mustValidate()
}
