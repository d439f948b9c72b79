package hasher

import "testing"

func TestContentHashLength(t *testing.T) {
	if got := ContentHash([]byte("P4\n2 2\n\xf0"), 0); len(got) != 16 {
		t.Errorf("full hash length: got %d", len(got))
	}
	if got := ContentHash([]byte("abc"), 8); len(got) != 8 {
		t.Errorf("truncated hash length: got %d", len(got))
	}
}

func TestContentHashKnownValue(t *testing.T) {
	// xxh64("") with seed 0
	if got := ContentHash(nil, 0); got != "ef46db3751d8e999" {
		t.Errorf("empty input: got %s", got)
	}
}
