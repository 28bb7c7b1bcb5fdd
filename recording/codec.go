package recording

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// formatVersion is bumped whenever Command changes incompatibly.
const formatVersion = 1

// ErrFormatVersion is returned by Read for streams written by an
// incompatible version of this package.
var ErrFormatVersion = errors.New("recording: unsupported format version")

type file struct {
	Version  int       `msgpack:"version"`
	Commands []Command `msgpack:"commands"`
}

// countingWriter counts bytes for io.WriterTo.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteTo writes the recording to w as zstd-compressed msgpack.
func (r *Recording) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw, err := zstd.NewWriter(cw)
	if err != nil {
		return 0, fmt.Errorf("recording: %w", err)
	}
	if err := msgpack.NewEncoder(zw).Encode(file{Version: formatVersion, Commands: r.commands}); err != nil {
		zw.Close()
		return cw.n, fmt.Errorf("recording: encode: %w", err)
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("recording: compress: %w", err)
	}
	return cw.n, nil
}

// Read decodes a recording written by WriteTo.
func Read(rd io.Reader) (*Recording, error) {
	zr, err := zstd.NewReader(rd)
	if err != nil {
		return nil, fmt.Errorf("recording: %w", err)
	}
	defer zr.Close()

	var f file
	if err := msgpack.NewDecoder(zr).Decode(&f); err != nil {
		return nil, fmt.Errorf("recording: decode: %w", err)
	}
	if f.Version != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrFormatVersion, f.Version)
	}
	return &Recording{commands: f.Commands}, nil
}

// Save writes the recording to the named file.
func (r *Recording) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := r.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a recording from the named file.
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
