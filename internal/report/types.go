package report

// Report describes one finished conversion. The CLI writes it to the
// path given with --report.
type Report struct {
	Version     int        `json:"version"`
	GeneratedAt string     `json:"generated_at"`
	Input       SourceInfo `json:"input"`
	Output      OutputInfo `json:"output"`
}

// SourceInfo holds what the decoder chain learned about the input.
type SourceInfo struct {
	Path     string `json:"path"`
	Decoder  string `json:"decoder"`            // "native" or "webp"
	Fallback string `json:"fallback,omitempty"` // primary failure reason when the fallback ran
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Channels int    `json:"channels"`
}

// OutputInfo describes the written file.
type OutputInfo struct {
	Path      string `json:"path"`
	Format    string `json:"format"`              // canonical codec: "png", "jpeg", ...
	Subformat string `json:"subformat,omitempty"` // P4/P5/P6 for pnm
	Size      int64  `json:"size"`
	Hash      string `json:"hash"` // 16 hex chars of xxhash64
}

// SupportedReportVersion is the current schema version.
const SupportedReportVersion = 1
