// internal/adapters/input/lines.go
package input

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"urlsummary/internal/platform/errors"
	"urlsummary/internal/platform/logx"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// maxLineSize bounds a single URL line.
const maxLineSize = 10 * 1024 * 1024

var gzipMagic = []byte{0x1f, 0x8b}

// LineSource yields one URL per non-blank line of a reader. Lines starting
// with '#' are comments. Gzip-compressed input is detected by its magic bytes.
//
// URLs can be ranged over once; the sequence stops early when the context is
// cancelled or the reader fails, and Err reports why.
type LineSource struct {
	ctx     context.Context
	name    string
	r       io.Reader
	closers []io.Closer
	logger  logx.Logger

	consumed bool
	lines    int
	err      error
}

// Open opens path for reading, or standard input when path is "-".
func Open(ctx context.Context, path string, logger logx.Logger) (*LineSource, error) {
	if path == Stdin {
		return NewLineSource(ctx, "stdin", os.Stdin, logger), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "open %s: %v", path, err)
	}
	src := NewLineSource(ctx, path, f, logger)
	src.closers = append(src.closers, f)
	return src, nil
}

// NewLineSource wraps r. The caller keeps ownership of r.
func NewLineSource(ctx context.Context, name string, r io.Reader, logger logx.Logger) *LineSource {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = logx.NewNop()
	}
	return &LineSource{
		ctx:    ctx,
		name:   name,
		r:      r,
		logger: logger.With("component", "input", "source", name),
	}
}

// Name returns the file name, or "stdin".
func (s *LineSource) Name() string { return s.name }

// Lines returns the number of lines read so far, comments and blanks included.
func (s *LineSource) Lines() int { return s.lines }

// Err returns the error that ended iteration early, if any.
func (s *LineSource) Err() error { return s.err }

// Close releases the underlying file.
func (s *LineSource) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

// scanned is one raw line, or the error that ended the scan.
type scanned struct {
	text string
	err  error
}

// URLs returns the single-pass URL sequence.
//
// Reading happens in a separate goroutine, so cancelling the context ends the
// sequence even while a read is blocked on an idle pipe or terminal. That
// goroutine exits once the pending read returns.
func (s *LineSource) URLs() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s.consumed {
			s.logger.Warn("input already consumed")
			return
		}
		s.consumed = true

		lines := make(chan scanned, 64)
		stop := make(chan struct{})
		defer close(stop)
		go s.scan(lines, stop)

		for {
			if err := s.ctx.Err(); err != nil {
				s.err = errors.Wrap(err, "reading "+s.name+" interrupted")
				return
			}

			var next scanned
			var ok bool
			select {
			case <-s.ctx.Done():
				s.err = errors.Wrap(s.ctx.Err(), "reading "+s.name+" interrupted")
				return
			case next, ok = <-lines:
			}
			if !ok {
				s.logger.Debug("input drained", "lines", s.lines)
				return
			}
			if next.err != nil {
				s.err = next.err
				return
			}
			s.lines++

			line := strings.TrimSpace(next.text)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}

// scan sends the raw lines of s.r to out until the input ends or stop is closed.
// It owns the decompressor; LineSource fields other than r and name are left alone.
func (s *LineSource) scan(out chan<- scanned, stop <-chan struct{}) {
	defer close(out)
	send := func(v scanned) bool {
		select {
		case out <- v:
			return true
		case <-stop:
			return false
		}
	}

	r, err := s.reader()
	if err != nil {
		send(scanned{err: err})
		return
	}
	if c, ok := r.(io.Closer); ok {
		// gzip.Reader.Close only repeats an error Read already returned
		defer c.Close()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n := 0
	for scanner.Scan() {
		n++
		if !send(scanned{text: scanner.Text()}) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		send(scanned{err: fmt.Errorf("read %s line %d: %w", s.name, n+1, err)})
	}
}

// reader returns r, decompressed when it starts with the gzip magic.
func (s *LineSource) reader() (io.Reader, error) {
	br := bufio.NewReader(s.r)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read %s: %w", s.name, err)
	}
	if !bytes.Equal(head, gzipMagic) {
		return br, nil
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "gzip %s: %v", s.name, err)
	}
	s.logger.Debug("gzip input detected")
	return zr, nil
}
