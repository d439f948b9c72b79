package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxOutputName is the longest output filename OutputName will produce.
const MaxOutputName = 1023

// OutputName replaces the extension of input's final path element with
// format: "photo.tiff" + "png" -> "photo.png", "archive" + "bmp" -> "archive.bmp".
func OutputName(input, format string) (string, error) {
	stem := strings.TrimSuffix(input, filepath.Ext(input))
	if n := len(stem) + 1 + len(format); n > MaxOutputName {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrPathTooLong, n, MaxOutputName)
	}
	return stem + "." + format, nil
}

// outputExtension returns the text after the last '.' of path.
func outputExtension(path string) (string, bool) {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return "", false
	}
	return path[i+1:], true
}
