// internal/adapters/input/lines_test.go
package input

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"urlsummary/internal/core/ports"
	"urlsummary/internal/platform/errors"
	"urlsummary/internal/platform/logx"
	"urlsummary/internal/testutil"
)

var (
	_ ports.URLSource = (*LineSource)(nil)
	_ ports.URLSource = (*MultiSource)(nil)
)

const sampleInput = `# crawl 2024-05-01
http://example.com/a

  http://example.com/b?x=1
	# indented comment
http://example.com/c
`

func TestLineSource_URLs(t *testing.T) {
	src := NewLineSource(context.Background(), "test", strings.NewReader(sampleInput), logx.NewNop())

	got := slices.Collect(src.URLs())
	want := []string{"http://example.com/a", "http://example.com/b?x=1", "http://example.com/c"}

	testutil.AssertEqual(t, got, want, "comments and blank lines skipped, lines trimmed")
	testutil.AssertNoError(t, src.Err(), "no read error")
	testutil.AssertEqual(t, src.Lines(), 6, "every line counted")
}

func TestLineSource_SinglePass(t *testing.T) {
	src := NewLineSource(context.Background(), "test", strings.NewReader(sampleInput), nil)

	first := slices.Collect(src.URLs())
	second := slices.Collect(src.URLs())

	testutil.AssertLen(t, first, 3, "first pass yields everything")
	testutil.AssertLen(t, second, 0, "second pass yields nothing")
}

func TestLineSource_EarlyStop(t *testing.T) {
	src := NewLineSource(context.Background(), "test", strings.NewReader(sampleInput), nil)

	var got []string
	for u := range src.URLs() {
		got = append(got, u)
		break
	}

	testutil.AssertEqual(t, got, []string{"http://example.com/a"}, "stops when the consumer stops")
	testutil.AssertNoError(t, src.Err(), "early stop is not an error")
}

func TestLineSource_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(sampleInput))
	testutil.AssertNoError(t, err, "gzip write")
	testutil.AssertNoError(t, zw.Close(), "gzip close")

	src := NewLineSource(context.Background(), "test.gz", &buf, nil)
	got := slices.Collect(src.URLs())

	testutil.AssertLen(t, got, 3, "gzip input decompressed")
	testutil.AssertNoError(t, src.Close(), "close decompressor")
}

func TestLineSource_CorruptGzip(t *testing.T) {
	data := append([]byte{0x1f, 0x8b}, []byte("not really gzip")...)
	src := NewLineSource(context.Background(), "bad.gz", bytes.NewReader(data), nil)

	got := slices.Collect(src.URLs())

	testutil.AssertLen(t, got, 0, "nothing yielded")
	testutil.AssertError(t, src.Err(), "corrupt gzip reported")
	testutil.AssertTrue(t, errors.IsInvalidInput(src.Err()), "wraps ErrInvalidInput")
}

func TestLineSource_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewLineSource(ctx, "test", strings.NewReader(sampleInput), nil)
	got := slices.Collect(src.URLs())

	testutil.AssertLen(t, got, 0, "nothing yielded after cancellation")
	testutil.AssertTrue(t, errors.Is(src.Err(), context.Canceled), "cancellation reported")
}

func TestLineSource_CancelledWhileReadBlocks(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	src := NewLineSource(ctx, "idle", pr, nil)

	go func() {
		_, _ = pw.Write([]byte("http://a.com/1\n"))
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	done := make(chan []string, 1)
	go func() { done <- slices.Collect(src.URLs()) }()

	select {
	case got := <-done:
		testutil.AssertEqual(t, got, []string{"http://a.com/1"}, "lines before cancellation yielded")
		testutil.AssertTrue(t, errors.Is(src.Err(), context.Canceled), "cancellation reported")
	case <-time.After(5 * time.Second):
		t.Fatal("iteration did not stop on cancellation while the reader was idle")
	}
}

func TestLineSource_EmptyInput(t *testing.T) {
	src := NewLineSource(context.Background(), "empty", strings.NewReader(""), nil)

	got := slices.Collect(src.URLs())

	testutil.AssertLen(t, got, 0, "empty input yields nothing")
	testutil.AssertNoError(t, src.Err(), "empty input is not an error")
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), nil)
	testutil.AssertError(t, err, "missing file")
	testutil.AssertTrue(t, errors.IsInvalidInput(err), "wraps ErrInvalidInput")
}

func TestMultiSource_URLs(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt.gz")

	testutil.AssertNoError(t, os.WriteFile(first, []byte("http://a.com/1\nhttp://a.com/2\n"), 0o644), "write first")

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte("# second\nhttp://b.com/1\n"))
	testutil.AssertNoError(t, zw.Close(), "gzip close")
	testutil.AssertNoError(t, os.WriteFile(second, buf.Bytes(), 0o644), "write second")

	src := OpenAll(context.Background(), []string{first, second}, nil)
	got := slices.Collect(src.URLs())

	testutil.AssertEqual(t, got, []string{"http://a.com/1", "http://a.com/2", "http://b.com/1"}, "inputs read in order")
	testutil.AssertEqual(t, src.Lines(), 4, "lines across inputs")
	testutil.AssertNoError(t, src.Err(), "no error")
	testutil.AssertEqual(t, src.Name(), first+","+second, "joined name")
}

func TestMultiSource_MissingFile(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	testutil.AssertNoError(t, os.WriteFile(first, []byte("http://a.com/1\n"), 0o644), "write first")

	src := OpenAll(context.Background(), []string{first, filepath.Join(dir, "missing.txt")}, nil)
	got := slices.Collect(src.URLs())

	testutil.AssertEqual(t, got, []string{"http://a.com/1"}, "first input read before failure")
	testutil.AssertTrue(t, errors.IsInvalidInput(src.Err()), "missing file reported")
}

type failingCloser struct{}

func (failingCloser) Close() error { return fmt.Errorf("device busy") }

func TestMultiSource_CloseErrorLogged(t *testing.T) {
	var logs bytes.Buffer
	src := OpenAll(context.Background(), []string{"a.txt"}, logx.NewWriter(&logs, logx.LevelWarn))
	src.open = func(ctx context.Context, path string, logger logx.Logger) (*LineSource, error) {
		ls := NewLineSource(ctx, path, strings.NewReader("http://a.com/1\n"), logger)
		ls.closers = append(ls.closers, failingCloser{})
		return ls, nil
	}

	got := slices.Collect(src.URLs())

	testutil.AssertEqual(t, got, []string{"http://a.com/1"}, "input read")
	testutil.AssertNoError(t, src.Err(), "close failure does not fail the read")
	testutil.AssertContains(t, logs.String(), "failed to close input", "close failure logged")
	testutil.AssertContains(t, logs.String(), "device busy", "close error logged")
}

func TestOpenAll_DefaultsToStdin(t *testing.T) {
	src := OpenAll(context.Background(), nil, nil)
	testutil.AssertEqual(t, src.Name(), "stdin", "stdin by default")
}
