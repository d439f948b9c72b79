package profile

import "image/png"

// Params defines the fixed encoding parameters for one output codec.
type Params struct {
	Name        string
	Lossless    bool
	Quality     float32              // lossy codecs only
	Compression png.CompressionLevel // png only
}

// Built-in parameters. These are compile-time defaults with no CLI or
// config surface.
var params = map[string]Params{
	"png": {
		Name:        "png",
		Lossless:    true,
		Compression: png.DefaultCompression,
	},
	"jpeg": {
		Name:    "jpeg",
		Quality: 90,
	},
	"webp": {
		Name:    "webp",
		Quality: 75.0,
	},
	"bmp": {Name: "bmp", Lossless: true},
	"tga": {Name: "tga", Lossless: true},
	"pnm": {Name: "pnm", Lossless: true},
}

// Get returns the parameters for a canonical codec name. Unknown names get
// a lossless zero-quality entry carrying the requested name.
func Get(name string) Params {
	if p, ok := params[name]; ok {
		return p
	}
	return Params{Name: name, Lossless: true}
}

// JPEGQuality returns the JPEG quality as the 1-100 integer image/jpeg expects.
func JPEGQuality() int {
	return int(params["jpeg"].Quality)
}

// WebPQuality returns the WebP quality factor (0-100).
func WebPQuality() float32 {
	return params["webp"].Quality
}
