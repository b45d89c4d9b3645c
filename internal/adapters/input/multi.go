// internal/adapters/input/multi.go
package input

import (
	"context"
	"iter"
	"strings"

	"urlsummary/internal/platform/logx"
)

// MultiSource reads several inputs back to back. Each file is opened only when
// the previous one is drained, so at most one descriptor is held at a time.
type MultiSource struct {
	ctx    context.Context
	paths  []string
	logger logx.Logger
	open   func(ctx context.Context, path string, logger logx.Logger) (*LineSource, error)

	consumed bool
	lines    int
	err      error
}

// OpenAll returns a source over paths; no paths means standard input.
func OpenAll(ctx context.Context, paths []string, logger logx.Logger) *MultiSource {
	if len(paths) == 0 {
		paths = []string{Stdin}
	}
	if logger == nil {
		logger = logx.NewNop()
	}
	return &MultiSource{ctx: ctx, paths: paths, logger: logger, open: Open}
}

// Name joins the input names.
func (m *MultiSource) Name() string {
	names := make([]string, len(m.paths))
	for i, p := range m.paths {
		if p == Stdin {
			p = "stdin"
		}
		names[i] = p
	}
	return strings.Join(names, ",")
}

// Lines returns the number of lines read across all inputs.
func (m *MultiSource) Lines() int { return m.lines }

// Err returns the first open or read error.
func (m *MultiSource) Err() error { return m.err }

// Close is a no-op; each input is closed once drained.
func (m *MultiSource) Close() error { return nil }

// URLs returns the single-pass URL sequence over every input in order.
func (m *MultiSource) URLs() iter.Seq[string] {
	return func(yield func(string) bool) {
		if m.consumed {
			m.logger.Warn("input already consumed")
			return
		}
		m.consumed = true

		for _, path := range m.paths {
			if !m.drain(path, yield) {
				return
			}
		}
	}
}

// drain reads one input and reports whether iteration should continue.
func (m *MultiSource) drain(path string, yield func(string) bool) bool {
	src, err := m.open(m.ctx, path, m.logger)
	if err != nil {
		m.err = err
		return false
	}
	defer func() {
		if err := src.Close(); err != nil {
			m.logger.Warn("failed to close input", "source", src.Name(), "error", err.Error())
		}
	}()

	stopped := false
	for u := range src.URLs() {
		if !yield(u) {
			stopped = true
			break
		}
	}
	m.lines += src.Lines()

	if err := src.Err(); err != nil {
		m.err = err
		return false
	}
	return !stopped
}
