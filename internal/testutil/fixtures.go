// internal/testutil/fixtures.go
package testutil

// Fixture data for tests (plain values only, no domain dependencies)

// FixtureURLs is a small crawl of one site: a bare host, nested paths and a
// query key that appears blank, with several values and with markup in it.
var FixtureURLs = []string{
	"http://example-one.com",
	"http://example.com",
	"http://example.com/foo",
	"http://example.com/foo/one",
	"http://example.com/foo/two",
	"http://example.com/foo/two?sort=asc",
	"http://example.com/foo/two?sort=asc&page=1",
	"http://example.com/foo/two?sort=asc&page=2",
	"http://example.com/foo/two?sort=asc&page=3",
	"http://example.com/foo/two?sort=desc&page=3",
	"http://example.com/foo/two?page",
	"http://example.com/foo/two?page=<blink>",
}

// FixtureMalformedURLs maps a short description to a URL that cannot be split.
var FixtureMalformedURLs = map[string]string{
	"open bracket":        "http://[::1/x",
	"close bracket":       "http://::1]/x",
	"open bracket port":   "http://[::1:8080",
	"bracket in userinfo": "http://us[er@example.com/",
}
