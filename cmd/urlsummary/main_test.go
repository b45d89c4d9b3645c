// cmd/urlsummary/main_test.go
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"urlsummary/internal/adapters/output"
	"urlsummary/internal/core/domain"
	"urlsummary/internal/platform/errors"
	"urlsummary/internal/testutil"
)

func writeInput(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urls.txt")
	data := strings.Join(lines, "\n") + "\n"
	testutil.AssertNoError(t, os.WriteFile(path, []byte(data), 0o644), "write input")
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("URLSUMMARY_LOG_LEVEL", "info")
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_JSON(t *testing.T) {
	in := writeInput(t,
		"# sample crawl",
		"http://a.com/x",
		"http://a.com/y",
		"",
		"http://b.com",
	)

	code, stdout, stderr := runCLI(t, "-f", "json", "--top-items", "10", in)
	testutil.AssertEqual(t, code, exitOK, "exit status")
	testutil.AssertContains(t, stderr, "urlsummary finished", "final log line on stderr")

	var doc output.Document
	testutil.AssertNoError(t, json.Unmarshal([]byte(stdout), &doc), "stdout is a JSON document")
	testutil.AssertEqual(t, doc.Metadata["input_urls"], "3", "input count in metadata")

	a, ok := doc.Summary.Find(domain.NewFacet(domain.KindNetloc, "a.com"))
	testutil.AssertTrue(t, ok, "netloc a.com present")
	testutil.AssertEqual(t, a.Count, 2, "a.com count")

	facets := doc.Summary.Facets()
	testutil.AssertEqual(t, facets[0], domain.AllFacet, "all first")
	testutil.AssertEqual(t, facets[1], domain.NewFacet(domain.KindNetloc, "a.com"), "larger netloc before smaller")
}

func TestRun_OutputFile(t *testing.T) {
	in := writeInput(t, "http://example.com/foo/two?sort=asc")
	out := filepath.Join(t.TempDir(), "report.html")

	code, stdout, _ := runCLI(t, "-f", "html", "-o", out, in)
	testutil.AssertEqual(t, code, exitOK, "exit status")
	testutil.AssertEqual(t, stdout, "", "nothing on stdout")

	data, err := os.ReadFile(out)
	testutil.AssertNoError(t, err, "report written")
	testutil.AssertContains(t, string(data), "<!DOCTYPE html>", "standalone document")
	testutil.AssertContains(t, string(data), "<b>?sort=asc</b>", "facet rendered")
}

func TestRun_ParseErrorPolicy(t *testing.T) {
	in := writeInput(t, "http://a.com/x", "http://[::1/broken", "http://a.com/y")

	code, stdout, stderr := runCLI(t, "-f", "json", in)
	testutil.AssertEqual(t, code, exitFailed, "abort policy fails the run")
	testutil.AssertEqual(t, stdout, "", "no partial summary")
	testutil.AssertContains(t, stderr, "http://[::1/broken", "offending URL logged")

	code, stdout, stderr = runCLI(t, "-f", "json", "--on-error", "skip", in)
	testutil.AssertEqual(t, code, exitOK, "skip policy succeeds")
	testutil.AssertContains(t, stderr, "WRN", "skipped URL logged as warning")

	var doc output.Document
	testutil.AssertNoError(t, json.Unmarshal([]byte(stdout), &doc), "stdout is a JSON document")
	all, _ := doc.Summary.Find(domain.AllFacet)
	testutil.AssertEqual(t, all.Count, 2, "malformed URL excluded")
	testutil.AssertEqual(t, doc.Metadata["skipped_urls"], "1", "skip count in metadata")
}

func TestRun_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative top items", []string{"-n", "-1"}},
		{"unknown policy", []string{"--on-error", "retry"}},
		{"unknown format", []string{"-f", "csv"}},
		{"unknown flag", []string{"--bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, _ := runCLI(t, tt.args...)
			testutil.AssertEqual(t, code, exitConfig, "exit status")
			testutil.AssertEqual(t, stdout, "", "nothing rendered")
		})
	}
}

func TestRun_MissingInput(t *testing.T) {
	code, _, stderr := runCLI(t, filepath.Join(t.TempDir(), "missing.txt"))
	testutil.AssertEqual(t, code, exitFailed, "exit status")
	testutil.AssertContains(t, stderr, "missing.txt", "missing file logged")
}

func TestRun_HelpAndVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "--help")
	testutil.AssertEqual(t, code, exitOK, "help exit status")
	testutil.AssertContains(t, stdout, "USAGE:", "help text")

	code, stdout, _ = runCLI(t, "-v")
	testutil.AssertEqual(t, code, exitOK, "version exit status")
	testutil.AssertContains(t, stdout, "urlsummary dev", "version text")
}

func TestRun_QuietTree(t *testing.T) {
	in := writeInput(t, "http://a.com/x?page=1", "http://a.com/x?page=2")

	code, stdout, stderr := runCLI(t, "-q", "--no-color", in)
	testutil.AssertEqual(t, code, exitOK, "exit status")
	testutil.AssertEqual(t, stderr, "", "quiet mode logs nothing on success")
	testutil.AssertContains(t, stdout, "2 query key: ?page (2 unique values)", "tree caption")
}

func TestRun_VerboseLogsConfiguration(t *testing.T) {
	in := writeInput(t, "http://a.com/x")

	code, _, stderr := runCLI(t, "--verbose", "-f", "json", "-n", "7", in)
	testutil.AssertEqual(t, code, exitOK, "exit status")
	testutil.AssertContains(t, stderr, "effective configuration", "configuration logged at debug level")
	testutil.AssertContains(t, stderr, "top_items: 7", "flag value in the logged configuration")
}

func TestRun_EmbeddedTabDoesNotAbort(t *testing.T) {
	in := writeInput(t, "http://a.com/p?q=a\tb", "http://a.com/p?q=ab")

	code, stdout, _ := runCLI(t, "-f", "json", in)
	testutil.AssertEqual(t, code, exitOK, "default abort policy keeps going")

	var doc output.Document
	testutil.AssertNoError(t, json.Unmarshal([]byte(stdout), &doc), "stdout is a JSON document")
	kv, ok := doc.Summary.Find(domain.NewFacet(domain.KindQueryKeyValue, "?q=ab"))
	testutil.AssertTrue(t, ok, "?q=ab present")
	testutil.AssertEqual(t, kv.Count, 2, "tab dropped before grouping")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"config", errors.Wrap(errors.ErrInvalidConfig, "top_items"), exitConfig},
		{"format", errors.Wrap(errors.ErrUnsupportedFormat, "csv"), exitConfig},
		{"parse", errors.Wrap(errors.ErrParse, "url #1"), exitFailed},
		{"input", errors.Wrap(errors.ErrInvalidInput, "open"), exitFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, exitCode(tt.err), tt.want, "exit code")
		})
	}
}
