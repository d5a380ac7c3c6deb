// Package embedurl normalizes dashboard embed URLs. Admins may paste either
// a bare URL or a complete iframe snippet; only the bare URL is ever stored.
// Known provider display parameters are appended at render time so the
// embedded frame hides its filter and navigation panes.
package embedurl

import (
	"regexp"
	"strings"
)

// srcAttr matches the src attribute of a pasted iframe snippet.
var srcAttr = regexp.MustCompile(`(?i)src="([^"]+)"`)

// Provider display flags appended to every rendered embed URL.
const (
	filterPaneParam = "filterPaneEnabled"
	navPaneParam    = "navContentPaneEnabled"
)

// ExtractSrc accepts a bare URL or a full iframe tag and returns the URL.
// If the input contains a src="..." attribute (case-insensitive), the quoted
// value is returned; otherwise the trimmed input is returned unchanged.
// Already-bare URLs pass through untouched, so the function is idempotent.
func ExtractSrc(value string) string {
	value = strings.TrimSpace(value)
	if m := srcAttr.FindStringSubmatch(value); m != nil {
		return m[1]
	}
	return value
}

// AddProviderParams appends the provider display flags to url, using "?" if
// the URL has no query component yet, else "&". Each flag is appended only
// when its key is not already present, so applying the function twice
// produces the same result as applying it once. An empty input is returned
// unchanged.
func AddProviderParams(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return url
	}

	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	if !strings.Contains(url, filterPaneParam+"=") {
		url += sep + filterPaneParam + "=false"
		sep = "&"
	}
	if !strings.Contains(url, navPaneParam+"=") {
		url += sep + navPaneParam + "=false"
	}
	return url
}

// Normalize runs the full write-or-render pipeline: strip iframe markup,
// then append provider display flags.
func Normalize(value string) string {
	return AddProviderParams(ExtractSrc(value))
}
