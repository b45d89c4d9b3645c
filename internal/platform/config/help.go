// internal/platform/config/help.go
package config

import (
	"fmt"
	"io"
	"runtime"
)

const helpText = `
urlsummary - Summarize large URL lists by shared structure

USAGE:
  urlsummary [options] [file ...]

  Reads one URL per line from the given files, or from stdin when no file
  (or "-") is given. Blank lines and lines starting with # are ignored.
  Gzip-compressed input is detected automatically.

SUMMARY OPTIONS:
  -n, --top-items int      Number of facets to report (default: 20)
  -s, --top-urls int       Sample URLs shown per facet (default: 3)
      --no-random          Show the first URLs of each group instead of a
                           seeded random sample
      --on-error string    Malformed URL policy: abort or skip (default: abort)
      --domains            Also group URLs by registered domain (eTLD+1)

OUTPUT OPTIONS:
  -f, --format string      tree, table, html, json or yaml (default: tree)
  -o, --out string         Output file or directory (default: stdout)
      --title string       Report title (default: "URL summary")
      --no-color           Disable terminal colours

GENERAL:
  -c, --config string      YAML configuration file
      --verbose            Debug logging on stderr
  -q, --quiet              Log errors only
  -v, --version            Print version information and exit
  -h, --help               Show this help message

EXAMPLES:
  Summarize a crawl log:
    urlsummary urls.txt

  Top 50 facets with 5 examples each, as a clickable HTML report:
    urlsummary -n 50 -s 5 -f html -o report.html urls.txt.gz

  Machine-readable output from a pipeline, skipping malformed lines:
    grep -o 'https\?://[^ ]*' access.log | urlsummary -f json --on-error skip

CONFIGURATION FILE:
  summary:
    top_items: 20
    top_urls: 3
    randomize_sample: true
    on_parse_error: abort
    registered_domains: false
  output:
    format: tree
    path: ""
    title: URL summary
    color: true
  log:
    verbose: false
    quiet: false

ENVIRONMENT VARIABLES:
  URLSUMMARY_CONFIG=/path.yaml      Configuration file
  URLSUMMARY_TOP_ITEMS=50           Number of facets
  URLSUMMARY_TOP_URLS=5             Sample size
  URLSUMMARY_RANDOMIZE=false        Seeded random sampling
  URLSUMMARY_ON_ERROR=skip          Malformed URL policy
  URLSUMMARY_DOMAINS=true           Registered-domain facets
  URLSUMMARY_FORMAT=json            Output format
  URLSUMMARY_OUT=/path              Output file or directory
  URLSUMMARY_TITLE=...              Report title
  URLSUMMARY_LOG_LEVEL=debug        debug, info, warn, error or off
  NO_COLOR                          Disable terminal colours

  Precedence: defaults < config file < environment < flags.

EXIT STATUS:
  0  success
  1  input, parse or render failure
  2  invalid configuration
`

// PrintHelp writes the help message to w.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, helpText)
}

// PrintVersion writes version information to w.
func PrintVersion(w io.Writer, version, commit, date string) {
	fmt.Fprintf(w, "urlsummary %s\n", version)
	fmt.Fprintf(w, "  Commit:  %s\n", commit)
	fmt.Fprintf(w, "  Built:   %s\n", date)
	fmt.Fprintf(w, "  Go:      %s\n", getGoVersion())
}

func getGoVersion() string {
	return runtime.Version()
}
