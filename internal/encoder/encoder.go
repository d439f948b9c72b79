package encoder

import (
	"github.com/AnyUserName/imgconv-cli/internal/pixbuf"
)

// Encoder encodes a pixel buffer to a specific container format.
type Encoder interface {
	// Format returns the canonical codec name (e.g. "jpeg", "webp", "pnm").
	Format() string

	// Encode serializes the buffer. The buffer is borrowed: encoders never
	// mutate or release it, and allocate their own scratch buffers for any
	// channel adaptation.
	Encode(b *pixbuf.Buffer) ([]byte, error)

	// Extension returns the preferred file extension without dot.
	Extension() string
}
