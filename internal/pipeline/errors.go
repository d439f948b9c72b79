package pipeline

import (
	"errors"

	"github.com/AnyUserName/imgconv-cli/internal/decoder"
	"github.com/AnyUserName/imgconv-cli/internal/pixbuf"
)

// Conversion failures. Errors returned by this package wrap one of these
// whenever the cause is known; codec errors are passed through as-is.
var (
	// ErrDecodeFailed: both the primary and the fallback decoder rejected the input.
	ErrDecodeFailed = decoder.ErrDecodeFailed

	// ErrUnsupportedFormat: the requested or derived extension is not in the fixed set.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrIO: a file could not be opened, read or written.
	ErrIO = decoder.ErrIO

	// ErrResourceExhausted: an intermediate buffer could not be allocated.
	ErrResourceExhausted = pixbuf.ErrResourceExhausted

	// ErrInvalidArguments: command-line usage violation.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrPathTooLong: the derived output filename exceeds MaxOutputName.
	ErrPathTooLong = errors.New("output filename too long")
)
