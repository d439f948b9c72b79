package encoder

import "fmt"

// Format is one of the closed set of output codecs.
type Format int

const (
	Unknown Format = iota
	PNG
	JPEG
	WebP
	BMP
	TGA
	PNM
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case WebP:
		return "webp"
	case BMP:
		return "bmp"
	case TGA:
		return "tga"
	case PNM:
		return "pnm"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// binding pairs an accepted extension with the codec it selects.
type binding struct {
	ext    string
	format Format
}

// bindings is the fixed extension table, in the order reported to users.
// jpg, jpeg and jfif are aliases for one encoder.
var bindings = [...]binding{
	{"png", PNG},
	{"jpg", JPEG},
	{"jpeg", JPEG},
	{"jfif", JPEG},
	{"webp", WebP},
	{"bmp", BMP},
	{"tga", TGA},
	{"pnm", PNM},
}

var (
	pngEncoder  = &PNGEncoder{}
	jpegEncoder = &JPEGEncoder{}
	webpEncoder = &WebPEncoder{}
	bmpEncoder  = &BMPEncoder{}
	tgaEncoder  = &TGAEncoder{}
	pnmEncoder  = &PNMEncoder{}
)

// Encoder returns the encoder for f, or nil for Unknown.
func (f Format) Encoder() Encoder {
	switch f {
	case PNG:
		return pngEncoder
	case JPEG:
		return jpegEncoder
	case WebP:
		return webpEncoder
	case BMP:
		return bmpEncoder
	case TGA:
		return tgaEncoder
	case PNM:
		return pnmEncoder
	case Unknown:
		return nil
	}
	return nil
}

// ParseExtension maps an extension (without dot) to its format. Matching is
// exact and case-sensitive.
func ParseExtension(ext string) (Format, bool) {
	for _, b := range bindings {
		if b.ext == ext {
			return b.format, true
		}
	}
	return Unknown, false
}

// ResolveEncoder returns the encoder bound to ext.
func ResolveEncoder(ext string) (Encoder, bool) {
	f, ok := ParseExtension(ext)
	if !ok {
		return nil, false
	}
	return f.Encoder(), true
}

// ValidateFormatName checks a requested output format against the fixed
// set and returns its canonical table spelling.
func ValidateFormatName(name string) (string, bool) {
	for _, b := range bindings {
		if b.ext == name {
			return b.ext, true
		}
	}
	return "", false
}

// Names returns every accepted format name in table order.
func Names() []string {
	names := make([]string, len(bindings))
	for i, b := range bindings {
		names[i] = b.ext
	}
	return names
}
