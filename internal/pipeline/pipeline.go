package pipeline

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/AnyUserName/imgconv-cli/internal/decoder"
	"github.com/AnyUserName/imgconv-cli/internal/encoder"
	"github.com/AnyUserName/imgconv-cli/internal/hasher"
	"github.com/AnyUserName/imgconv-cli/internal/report"
)

// Config holds the collaborators of a conversion.
type Config struct {
	Logger  *log.Logger
	Decoder *decoder.Chain // nil = native -> webp chain
}

// Pipeline converts one image file into another container format.
type Pipeline struct {
	log   *log.Logger
	chain *decoder.Chain
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	chain := cfg.Decoder
	if chain == nil {
		chain = decoder.NewChain(logger)
	}
	return &Pipeline{log: logger, chain: chain}
}

// Result describes a finished conversion.
type Result struct {
	Input     string
	Output    string
	Format    string // canonical codec name
	Subformat string // PNM magic, empty for other codecs
	Width     int
	Height    int
	Channels  int
	Decoder   string
	Fallback  string // primary decoder failure when the fallback ran
	Size      int64
	Hash      string
}

// Report converts the result into its JSON report form.
func (r *Result) Report() *report.Report {
	rep := report.New()
	rep.Input = report.SourceInfo{
		Path:     r.Input,
		Decoder:  r.Decoder,
		Fallback: r.Fallback,
		Width:    r.Width,
		Height:   r.Height,
		Channels: r.Channels,
	}
	rep.Output = report.OutputInfo{
		Path:      r.Output,
		Format:    r.Format,
		Subformat: r.Subformat,
		Size:      r.Size,
		Hash:      r.Hash,
	}
	return rep
}

// Convert decodes inputPath, encodes it in the format named by the
// extension of outputPath and writes the result there. Exactly one encode
// is attempted. The decoded buffer is released on every path, and
// outputPath is left untouched unless encoding succeeded.
func (p *Pipeline) Convert(inputPath, outputPath string) (*Result, error) {
	dec, err := p.chain.Decode(inputPath)
	if err != nil {
		return nil, err
	}
	buf := dec.Buffer
	defer p.chain.Release(buf)

	ext, ok := outputExtension(outputPath)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, outputPath)
	}
	enc, ok := encoder.ResolveEncoder(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	p.log.Debug("encoding", "format", enc.Format(), "channels", buf.Channels)
	data, err := enc.Encode(buf)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", enc.Format(), err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("encode %s: %w", enc.Format(), errors.New("empty output"))
	}

	if err := writeFile(outputPath, data); err != nil {
		return nil, err
	}

	res := &Result{
		Input:    inputPath,
		Output:   outputPath,
		Format:   enc.Format(),
		Width:    buf.Width,
		Height:   buf.Height,
		Channels: buf.Channels,
		Decoder:  dec.Decoder,
		Size:     int64(len(data)),
		Hash:     hasher.ContentHash(data, 16),
	}
	if dec.PrimaryErr != nil {
		res.Fallback = dec.PrimaryErr.Error()
	}
	if enc.Format() == "pnm" {
		res.Subformat = string(data[:2])
	}
	p.log.Debug("written", "path", outputPath, "bytes", res.Size, "hash", res.Hash)
	return res, nil
}

// writeFile writes data to path, removing the file again if any step fails.
func writeFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w: close %s: %v", ErrIO, path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrIO, path, err)
	}
	return nil
}
